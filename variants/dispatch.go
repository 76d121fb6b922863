package variants

import "headcover-configurator/models"

// requirement is the part of a collection's configuration that selects a custom branch
type requirement int

const (
	requirementNonStyled requirement = iota
	requirementStyled
	requirementLeatherDesignation
)

func (q requirement) String() string {
	switch q {
	case requirementNonStyled:
		return "non-styled"
	case requirementStyled:
		return "styled"
	case requirementLeatherDesignation:
		return "leather-designation"
	}
	return "unknown"
}

var (
	classifications = []models.Classification{
		models.ClassificationWood,
		models.ClassificationPutter,
		models.ClassificationOther,
	}
	requirements = []requirement{
		requirementNonStyled,
		requirementStyled,
		requirementLeatherDesignation,
	}
)

// requirementOf derives the branch selector of a collection.
// A per-shape quilted leather takes precedence over the style flag.
func requirementOf(c models.Collection) requirement {
	switch {
	case c.NeedsColorDesignation:
		return requirementLeatherDesignation
	case !c.NeedsStyle:
		return requirementNonStyled
	default:
		return requirementStyled
	}
}

// classificationOf normalizes unknown classifications to OTHER
func classificationOf(shape models.Shape) models.Classification {
	switch shape.Classification {
	case models.ClassificationWood, models.ClassificationPutter:
		return shape.Classification
	}
	return models.ClassificationOther
}

type strategyKey struct {
	classification models.Classification
	requirement    requirement
}

// customStrategy derives the custom counterpart of one regular variant
type customStrategy func(r *run, item regularItem) (customCandidate, error)

// customStrategies maps every (classification, requirement) pair to its branch
var customStrategies = map[strategyKey]customStrategy{
	{models.ClassificationWood, requirementNonStyled}:            woodNonStyledCustom,
	{models.ClassificationWood, requirementStyled}:               woodStyledCustom,
	{models.ClassificationWood, requirementLeatherDesignation}:   woodLeatherCustom,
	{models.ClassificationPutter, requirementNonStyled}:          putterCustom,
	{models.ClassificationPutter, requirementStyled}:             putterCustom,
	{models.ClassificationPutter, requirementLeatherDesignation}: putterCustom,
	{models.ClassificationOther, requirementNonStyled}:           nonStyledCustom,
	{models.ClassificationOther, requirementStyled}:              styledCustom,
	{models.ClassificationOther, requirementLeatherDesignation}:  leatherDesignationCustom,
}

func strategyFor(shape models.Shape, c models.Collection) (customStrategy, bool) {
	s, ok := customStrategies[strategyKey{classificationOf(shape), requirementOf(c)}]
	return s, ok
}
