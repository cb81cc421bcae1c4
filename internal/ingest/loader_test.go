package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebkarlson404/StarFieldMiner/internal/diagnostic"
	"github.com/ebkarlson404/StarFieldMiner/internal/esm"
	"github.com/ebkarlson404/StarFieldMiner/internal/esmerr"
	"github.com/ebkarlson404/StarFieldMiner/internal/record"
)

const weaponsFile = `{
	"Laser": {
		"Record Header": {"Signature": "WEAP", "FormID": "00800001"},
		"EDID - Editor ID": "Laser",
		"WAM2 - Ammunition": {"Ammo Type": "Cell [AMMO:00A00001]"}
	},
	"Broken": {"EDID - Editor ID": "NoHeader"},
	"Odd": {"Record Header": {"Signature": "WEAP"}}
}`

const ammoFile = `{
	"Cell": {"Record Header": {"Signature": "AMMO", "FormID": "00A00001"}, "EDID - Editor ID": "Cell"},
	"Again": {"Record Header": {"Signature": "WEAP", "FormID": "00800001"}, "EDID - Editor ID": "LaserCopy"}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoader_LoadFilesAccumulates(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "weapons.json", weaponsFile),
		writeFile(t, dir, "ammo.json", ammoFile),
	}

	reg := record.NewRegistry()
	l := NewLoader(reg, Options{Encoding: "utf-8"})

	stats, err := l.LoadFiles(paths)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, FileStats{Source: paths[0], Records: 1, Rejected: 2}, stats[0])
	assert.Equal(t, FileStats{Source: paths[1], Records: 1, Rejected: 1}, stats[1])
	assert.Equal(t, 2, reg.Len())

	// the weapon's ammo lives in a later file and still resolves
	w, ok := record.Find[*esm.Weapon](reg, "00800001")
	require.True(t, ok)
	assert.Equal(t, "Laser", w.EditorID())

	ammo, ok := w.Ammo()
	require.True(t, ok)
	assert.Equal(t, "Cell", ammo.EditorID())

	diags := l.Diagnostics()
	assert.Equal(t, 2, diags.Count(diagnostic.CodeMalformedRecord))
	assert.Equal(t, 1, diags.Count(diagnostic.CodeDuplicateFormID))
	assert.Equal(t, paths[0], diags.Warnings[0].Source)
	assert.Equal(t, "Record Header", diags.Warnings[0].Field)
	assert.Equal(t, "Record Header.FormID", diags.Warnings[1].Field)
	assert.Equal(t, paths[1], diags.Warnings[2].Source)
	assert.False(t, diags.HasErrors())
}

func TestLoader_RejectedRecordsAreNamed(t *testing.T) {
	doc := `{
		"Broken_A": {"EDID - Editor ID": "BrokenA_Edid"},
		"Broken_B": {"DATA - Value": 1},
		"Broken_B": {"Record Header": {"FormID": "00800001"}}
	}`

	l := NewLoader(record.NewRegistry(), Options{})
	st, err := l.Load(strings.NewReader(doc), "broken.json")
	require.NoError(t, err)
	assert.Equal(t, 3, st.Rejected)

	diags := l.Diagnostics()
	require.Len(t, diags.Warnings, 3)

	records := make([]string, len(diags.Warnings))
	for i, w := range diags.Warnings {
		records[i] = w.Record
		assert.Contains(t, w.Message, " in "+w.Record)
	}

	assert.Equal(t, []string{"Broken_A (BrokenA_Edid)", "Broken_B", "Broken_B #2"}, records)
	assert.Equal(t, "Record Header.Signature", diags.Warnings[2].Field)
}

func TestLoader_CountsUntypedRecords(t *testing.T) {
	doc := `{
		"Sarah": {"Record Header": {"Signature": "NPC_", "FormID": "00005791"}, "EDID - Editor ID": "SarahMorgan"},
		"Cell": {"Record Header": {"Signature": "AMMO", "FormID": "00A00001"}}
	}`

	reg := record.NewRegistry()
	st, err := NewLoader(reg, Options{}).Load(strings.NewReader(doc), "mixed.json")
	require.NoError(t, err)
	assert.Equal(t, FileStats{Source: "mixed.json", Records: 2, Untyped: 1}, st)

	_, ok := reg.FindByEditorID("SarahMorgan")
	assert.True(t, ok)
}

func TestLoader_RootMustBeObject(t *testing.T) {
	for name, doc := range map[string]string{
		"array":  `[{"Record Header": {"Signature": "WEAP", "FormID": "00800001"}}]`,
		"scalar": `"records"`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewLoader(record.NewRegistry(), Options{}).Load(strings.NewReader(doc), name)
			require.ErrorIs(t, err, esmerr.ErrMalformedData)
		})
	}
}

func TestLoader_InvalidJSONIsFatal(t *testing.T) {
	_, err := NewLoader(record.NewRegistry(), Options{}).Load(strings.NewReader(`{"a": `), "cut.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cut.json")
}

func TestLoader_StopsAtFirstFatalFile(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "ammo.json", ammoFile),
		filepath.Join(dir, "missing.json"),
		writeFile(t, dir, "weapons.json", weaponsFile),
	}

	reg := record.NewRegistry()
	l := NewLoader(reg, Options{})
	stats, err := l.LoadFiles(paths)
	require.Error(t, err)
	assert.Len(t, stats, 1)
	assert.Equal(t, 2, reg.Len())

	diags := l.Diagnostics()
	require.True(t, diags.HasErrors())
	assert.Equal(t, paths[1], diags.Errors[0].Source)
	assert.Equal(t, diagnostic.CodeUnreadableFile, diags.Errors[0].Code)
}

func TestLoader_KeepGoingSkipsFatalFiles(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "ammo.json", ammoFile),
		filepath.Join(dir, "missing.json"),
		writeFile(t, dir, "cut.json", `{"a": `),
		writeFile(t, dir, "weapons.json", weaponsFile),
	}

	reg := record.NewRegistry()
	l := NewLoader(reg, Options{KeepGoing: true})
	stats, err := l.LoadFiles(paths)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.json")
	assert.Contains(t, err.Error(), "cut.json")

	// both readable files were still loaded
	require.Len(t, stats, 2)
	assert.Equal(t, paths[3], stats[1].Source)
	assert.Equal(t, 3, stats[1].Rejected)
	assert.Equal(t, 2, reg.Len())

	diags := l.Diagnostics()
	assert.Equal(t, 2, diags.Count(diagnostic.CodeUnreadableFile))
}
