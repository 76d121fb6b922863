package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"headcover-configurator/models"
)

const testCatalog = "../../repository/testdata/catalog.yaml"

const testConfiguration = `{
  "collectionId": "classic",
  "weights": {"driver": "0.5", "putter": "0.3"},
  "primaryLeatherId": "black",
  "secondaryLeatherId": "white",
  "stitchingColorId": "gold"
}`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerate_JSONFromStdin(t *testing.T) {
	out, err := execute(t, testConfiguration, "generate", "--catalog", testCatalog)
	require.NoError(t, err)

	var preview models.VariantPreview
	require.NoError(t, json.Unmarshal([]byte(out), &preview))
	require.Len(t, preview.Variants, 5)
	assert.Equal(t, "Classic-BLK-WHT-Fairway", preview.Variants[0].SKU)
	assert.Equal(t, "Classic-BLK-WHT-Set", preview.Variants[2].SKU)
	assert.Equal(t, "Classic-BLK-WHT-Fairway-Custom", preview.Variants[3].SKU)
}

func TestGenerate_TableFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configuration.json")
	require.NoError(t, os.WriteFile(path, []byte(testConfiguration), 0o644))

	out, err := execute(t, "", "generate", "--catalog", testCatalog, "--config", path, "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "POS")
	assert.Contains(t, out, "Classic-BLK-WHT-Putter-Custom")
}

func TestGenerate_CollectionOverride(t *testing.T) {
	_, err := execute(t, testConfiguration, "generate", "--catalog", testCatalog, "--collection", "argyle")
	assert.Error(t, err)
}

func TestGenerate_StrictRejectsSkipped(t *testing.T) {
	cfg := strings.Replace(testConfiguration, `"putter": "0.3"`, `"putter": "0.3", "mallet": "0.4"`, 1)

	out, err := execute(t, cfg, "generate", "--catalog", testCatalog)
	require.NoError(t, err)
	assert.Contains(t, out, `"shapeId": "mallet"`)

	out, err = execute(t, cfg, "generate", "--catalog", testCatalog, "--strict")
	require.Error(t, err)
	assert.Contains(t, out, `"skipped"`)
}

func TestGenerate_BadFormat(t *testing.T) {
	_, err := execute(t, testConfiguration, "generate", "--catalog", testCatalog, "--format", "xml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "", "validate", "--catalog", testCatalog)
	require.NoError(t, err)
	assert.Contains(t, out, "catalog snapshot ok")
}

func TestValidate_ReportsProblems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	snapshot := `
collections:
  - id: classic
    type: Classic
  - id: argyle
    type: Argyle
prices:
  classic:
    fairway: "45.00"
    iron: "30.00"
catalog:
  shapes:
    - id: driver
      classification: WOOD
`
	require.NoError(t, os.WriteFile(path, []byte(snapshot), 0o644))

	out, err := execute(t, "", "validate", "--catalog", path)
	require.Error(t, err)
	assert.Contains(t, out, "collection argyle: no price table")
	assert.Contains(t, out, "collection classic: price for unknown shape iron")
}

func TestCliLogger(t *testing.T) {
	assert.False(t, cliLogger(false).Core().Enabled(zap.ErrorLevel))
	assert.True(t, cliLogger(true).Core().Enabled(zap.DebugLevel))
}
