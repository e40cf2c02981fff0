package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/workforce-engine/config"
)

const validYAML = `
seed: 42
days: 7
orgs:
  - "H/Inpatient/Nursing"
  - "H/Admin/HR"
jobs:
  Nursing:
    - { job_code: RN, job_title: Registered Nurse, job_family: Clinical }
paycodes: [REG, OT, CALL]
`

func TestLoad_Valid(t *testing.T) {
	// GIVEN: a well-formed config file
	// WHEN: loading it
	// THEN: every field round-trips, orgs keep their order

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 7, cfg.Days)
	assert.Equal(t, []string{"H/Inpatient/Nursing", "H/Admin/HR"}, cfg.Orgs)
	require.Len(t, cfg.Jobs["Nursing"], 1)
	assert.Equal(t, config.Job{Code: "RN", Title: "Registered Nurse", Family: "Clinical"}, cfg.Jobs["Nursing"][0])
	assert.Equal(t, []string{"REG", "OT", "CALL"}, cfg.Paycodes)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestParse_FailsFast(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"missing seed", `
days: 7
orgs: ["H/Nursing"]
paycodes: [REG]
`},
		{"missing days", `
seed: 1
orgs: ["H/Nursing"]
paycodes: [REG]
`},
		{"zero days", `
seed: 1
days: 0
orgs: ["H/Nursing"]
paycodes: [REG]
`},
		{"no orgs", `
seed: 1
days: 7
orgs: []
paycodes: [REG]
`},
		{"blank org path", `
seed: 1
days: 7
orgs: ["H/Nursing", "  "]
paycodes: [REG]
`},
		{"no paycodes", `
seed: 1
days: 7
orgs: ["H/Nursing"]
paycodes: []
`},
		{"empty job code", `
seed: 1
days: 7
orgs: ["H/Nursing"]
jobs:
  Nursing:
    - { job_code: "", job_title: X, job_family: Y }
paycodes: [REG]
`},
		{"wrong type", `
seed: not-a-number
days: 7
orgs: ["H/Nursing"]
paycodes: [REG]
`},
		{"not yaml", `{{{`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestPathOverrides(t *testing.T) {
	// GIVEN: no env overrides
	// THEN: the fixed defaults apply
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("OUT_DIR", "")
	assert.Equal(t, config.DefaultConfigPath, config.ConfigPath())
	assert.Equal(t, config.DefaultOutDir, config.OutDir())

	// GIVEN: env overrides
	// THEN: they win
	t.Setenv("CONFIG_PATH", "/tmp/alt.yaml")
	t.Setenv("OUT_DIR", "/tmp/out")
	assert.Equal(t, "/tmp/alt.yaml", config.ConfigPath())
	assert.Equal(t, "/tmp/out", config.OutDir())
}
