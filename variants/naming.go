package variants

import (
	"strings"

	"headcover-configurator/models"
)

const (
	defaultLeatherPhrase = "leather as"
	splitLeatherPhrase   = "leather on left -"
	splitStyleLabel      = "50/50"
	oppositeStyleAbbr    = "Fat"
	customSuffix         = "+$15"
	customPrefix         = "Customize"
)

// NameParts are the tokens a name pattern can reference
type NameParts struct {
	ShapeLabel    string
	StyleLabel    string
	LeatherLabel  string
	LeatherPhrase string
}

type nameRenderer func(NameParts) string

var nameRenderers = map[models.NamePattern]nameRenderer{
	models.NamePatternStandard:   renderStandard,
	models.NamePatternStyleFirst: renderStyleFirst,
}

func renderStandard(p NameParts) string {
	return joinWords(p.LeatherLabel, p.LeatherPhrase, p.StyleLabel)
}

func renderStyleFirst(p NameParts) string {
	return joinWords(p.StyleLabel, "with", p.LeatherLabel, p.LeatherPhrase)
}

// placeholder identifies a token a custom name template may reference
type placeholder int

const (
	placeholderShape placeholder = iota + 1
	placeholderStyle
	placeholderLeather
)

var placeholders = map[string]placeholder{
	"{shape.label}":   placeholderShape,
	"{style.label}":   placeholderStyle,
	"{leather.label}": placeholderLeather,
}

type templateSegment struct {
	literal string
	field   placeholder // zero for literal text
}

// NameTemplate is a compiled custom name pattern
type NameTemplate struct {
	segments []templateSegment
}

// CompileNameTemplate parses a custom name pattern.
// Unknown or unterminated placeholders are rejected.
func CompileNameTemplate(pattern string) (NameTemplate, error) {
	if strings.TrimSpace(pattern) == "" {
		return NameTemplate{}, assemblyErr("empty name template")
	}

	var t NameTemplate
	rest := pattern
	for len(rest) > 0 {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			t.segments = append(t.segments, templateSegment{literal: rest})
			break
		}
		if open > 0 {
			t.segments = append(t.segments, templateSegment{literal: rest[:open]})
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return NameTemplate{}, assemblyErr("unterminated placeholder in %q", pattern)
		}
		token := rest[open : open+end+1]
		field, ok := placeholders[token]
		if !ok {
			return NameTemplate{}, assemblyErr("unknown placeholder %s in %q", token, pattern)
		}
		t.segments = append(t.segments, templateSegment{field: field})
		rest = rest[open+end+1:]
	}
	return t, nil
}

// Render substitutes the placeholders of the template
func (t NameTemplate) Render(p NameParts) string {
	var b strings.Builder
	for _, seg := range t.segments {
		switch seg.field {
		case placeholderShape:
			b.WriteString(p.ShapeLabel)
		case placeholderStyle:
			b.WriteString(p.StyleLabel)
		case placeholderLeather:
			b.WriteString(p.LeatherLabel)
		default:
			b.WriteString(seg.literal)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ValidateStyle checks that a style's name pattern can be rendered
func ValidateStyle(style models.Style) error {
	switch style.NamePattern {
	case "", models.NamePatternStandard, models.NamePatternStyleFirst:
		return nil
	case models.NamePatternCustom:
		if style.CustomNamePattern == "" {
			return nil
		}
		_, err := CompileNameTemplate(style.CustomNamePattern)
		return err
	default:
		return assemblyErr("unknown name pattern %q on style %q", style.NamePattern, style.ID)
	}
}

// LeatherPhrase returns the style's leather phrase, defaulting to "leather as"
func LeatherPhrase(style models.Style) string {
	if strings.TrimSpace(style.LeatherPhrase) == "" {
		return defaultLeatherPhrase
	}
	return style.LeatherPhrase
}

// RenderName maps a style's name pattern, the named leather and the shape label to a display name.
// The leather must already be resolved with ResolveNamedLeather.
func RenderName(style models.Style, leather models.LeatherColor, shapeLabel string) (string, error) {
	parts := NameParts{
		ShapeLabel:    shapeLabel,
		StyleLabel:    style.Label,
		LeatherLabel:  leather.Label,
		LeatherPhrase: LeatherPhrase(style),
	}

	pattern := style.NamePattern
	if pattern == "" {
		pattern = models.NamePatternStandard
	}

	if pattern == models.NamePatternCustom {
		if style.CustomNamePattern == "" {
			return renderStandard(parts), nil
		}
		tmpl, err := CompileNameTemplate(style.CustomNamePattern)
		if err != nil {
			return "", err
		}
		return tmpl.Render(parts), nil
	}

	render, ok := nameRenderers[pattern]
	if !ok {
		return "", assemblyErr("unknown name pattern %q on style %q", style.NamePattern, style.ID)
	}
	return render(parts), nil
}

// ResolveNamedLeather applies the opposite-leather rule: a "Fat" style with
// UseOppositeLeather names the other of the two selected leathers.
func ResolveNamedLeather(style *models.Style, chosen models.LeatherColor, primary models.LeatherColor, secondary *models.LeatherColor) models.LeatherColor {
	if style == nil || secondary == nil {
		return chosen
	}
	if !style.UseOppositeLeather || style.Abbreviation != oppositeStyleAbbr {
		return chosen
	}
	switch chosen.ID {
	case primary.ID:
		return *secondary
	case secondary.ID:
		return primary
	}
	return chosen
}

// designationLeatherPhrase returns the phrase used in leather-designation custom names
func designationLeatherPhrase(style models.Style) string {
	if style.Label == splitStyleLabel {
		return splitLeatherPhrase
	}
	return defaultLeatherPhrase
}

// customName wraps a name body with the customization prefix and surcharge suffix
func customName(body ...string) string {
	words := append([]string{customPrefix}, body...)
	words = append(words, customSuffix)
	return joinWords(words...)
}

// joinWords joins non-empty words with single spaces
func joinWords(words ...string) string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}
