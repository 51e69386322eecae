package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tobrh/wordgain/pkg/solver"
)

func TestDefaultConfigMatchesTunedCurve(t *testing.T) {
	cfg := DefaultConfig()
	curve := cfg.SolverCurve()
	if curve != solver.DefaultCurve() {
		t.Errorf("default config curve %+v differs from solver default %+v", curve, solver.DefaultCurve())
	}
	if cfg.Dict.SampleWindow != 5 {
		t.Errorf("default sample window = %d, want 5", cfg.Dict.SampleWindow)
	}
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("fresh config differs from defaults: %+v", cfg)
	}

	// second call reads the file back
	again, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig reload: %v", err)
	}
	if *again != *cfg {
		t.Errorf("reloaded config differs: %+v vs %+v", again, cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[solver]
suggestion_limit = 12

[dict]
path = "custom/words.txt"
sample_window = 3

[curve]
a = -1.0
b = 2.0
c = -3.0
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Solver.SuggestionLimit != 12 {
		t.Errorf("suggestion_limit = %d, want 12", cfg.Solver.SuggestionLimit)
	}
	if cfg.Dict.Path != "custom/words.txt" || cfg.Dict.SampleWindow != 3 {
		t.Errorf("dict section not applied: %+v", cfg.Dict)
	}
	if got := cfg.SolverCurve(); got != (solver.Curve{A: -1.0, B: 2.0, C: -3.0}) {
		t.Errorf("curve section not applied: %+v", got)
	}
	// untouched section keeps defaults
	if cfg.CLI.DefaultLimit != DefaultConfig().CLI.DefaultLimit {
		t.Errorf("cli defaults clobbered: %+v", cfg.CLI)
	}
}

// A type error in one section must not take down the rest of the file.
func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[solver]
suggestion_limit = "lots"

[dict]
path = "salvaged/words.txt"
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig should recover, got: %v", err)
	}
	if cfg.Solver.SuggestionLimit != DefaultConfig().Solver.SuggestionLimit {
		t.Errorf("broken value should fall back to default, got %d", cfg.Solver.SuggestionLimit)
	}
	if cfg.Dict.Path != "salvaged/words.txt" {
		t.Errorf("valid section lost in recovery: %+v", cfg.Dict)
	}
}
