package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebkarlson404/StarFieldMiner/internal/miner"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
inputs:
  - Starfield.json
  - ShatteredSpace.json
output: out/shipweapons.csv
delimiter: ";"
log:
  level: debug
  format: json
policy:
  explosion_flag_gated: false
  crew_rating:
    required: false
    default: 0.0
`

	c, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, []string{"Starfield.json", "ShatteredSpace.json"}, c.Inputs)
	assert.Equal(t, "out/shipweapons.csv", c.Output)
	assert.Equal(t, ';', c.DelimiterRune())
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, FormatJSON, c.Log.Format)

	// defaults
	assert.Equal(t, "cp1252", c.Encoding)
	assert.Equal(t, miner.ShipWeaponName, c.Miner)

	p := c.MinerPolicy()
	assert.False(t, p.ExplosionFlagGated)
	assert.False(t, p.CrewRating.Required)
	assert.InDelta(t, 0.0, p.CrewRating.Default, 1e-9)
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, "1", c.Version)
	assert.Equal(t, '|', c.DelimiterRune())
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, FormatConsole, c.Log.Format)
	assert.Equal(t, miner.DefaultPolicy(), c.MinerPolicy())
}

func TestParse_PartialPolicyKeepsDefaults(t *testing.T) {
	c, err := Parse([]byte("policy:\n  crew_rating:\n    required: false\n"))
	require.NoError(t, err)

	p := c.MinerPolicy()
	assert.True(t, p.ExplosionFlagGated)
	assert.False(t, p.CrewRating.Required)
	assert.InDelta(t, 0.25, p.CrewRating.Default, 1e-9)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("inputs: [unterminated"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "miner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("miner: ShipWeapon\nencoding: utf-8\n"), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "utf-8", c.Encoding)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"multi-char delimiter", func(c *Config) { c.Delimiter = "||" }, "single character"},
		{"quote delimiter", func(c *Config) { c.Delimiter = `"` }, "cannot be used"},
		{"unknown miner", func(c *Config) { c.Miner = "ShipArmor" }, `unknown miner "ShipArmor"`},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"negative crew", func(c *Config) { d := -1.0; c.Policy.CrewRating.Default = &d }, "crew_rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)

			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"STARFIELD_MINER_INPUTS":               "a.json, b.json,",
		"STARFIELD_MINER_OUTPUT":               "rows.csv",
		"STARFIELD_MINER_LOG_LEVEL":            "warn",
		"STARFIELD_MINER_EXPLOSION_FLAG_GATED": "false",
		"STARFIELD_MINER_CREW_RATING_REQUIRED": "0",
		"STARFIELD_MINER_CREW_RATING_DEFAULT":  "0.5",
		"STARFIELD_MINER_ENCODING":             "  ",
		"STARFIELD_MINER_KEEP_GOING":           "true",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	c := Default()
	require.NoError(t, c.applyEnv(lookup))

	assert.Equal(t, []string{"a.json", "b.json"}, c.Inputs)
	assert.Equal(t, "rows.csv", c.Output)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, "cp1252", c.Encoding)
	assert.True(t, c.KeepGoing)

	p := c.MinerPolicy()
	assert.False(t, p.ExplosionFlagGated)
	assert.False(t, p.CrewRating.Required)
	assert.InDelta(t, 0.5, p.CrewRating.Default, 1e-9)
}

func TestMarshal_RoundTrip(t *testing.T) {
	c := Default()
	c.Inputs = []string{"Starfield.json"}
	c.KeepGoing = true
	gated := false
	c.Policy.ExplosionFlagGated = &gated

	data, err := Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), "explosion_flag_gated: false")
	assert.Contains(t, string(data), "keep_going: true")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestApplyEnv_BadValues(t *testing.T) {
	env := map[string]string{
		"STARFIELD_MINER_EXPLOSION_FLAG_GATED": "sometimes",
		"STARFIELD_MINER_CREW_RATING_DEFAULT":  "lots",
		"STARFIELD_MINER_KEEP_GOING":           "maybe",
	}

	c := Default()
	err := c.applyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EXPLOSION_FLAG_GATED")
	assert.Contains(t, err.Error(), "CREW_RATING_DEFAULT")
	assert.Contains(t, err.Error(), "KEEP_GOING")
	assert.True(t, c.MinerPolicy().ExplosionFlagGated)
}

func TestApplyEnv_ProcessEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STARFIELD_MINER_MINER", "ShipWeapon")
	t.Setenv("STARFIELD_MINER_DELIMITER", ",")

	c := Default()
	require.NoError(t, c.ApplyEnv())
	assert.Equal(t, ',', c.DelimiterRune())
}
