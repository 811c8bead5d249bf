package report

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
project:
  name: EQA 2024
Illumina:
  new: new_sheet.csv
  original: /data/original_sheet.csv
thresholds:
  ariba_resfinder:
    coverage: 70
prefix:
  separator: "-"
  tokens: 1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Project.Name != "EQA 2024" {
		t.Errorf("project name: %q", cfg.Project.Name)
	}
	if cfg.Illumina.New != filepath.Join(dir, "new_sheet.csv") {
		t.Errorf("relative sheet paths must resolve against the config dir: %q", cfg.Illumina.New)
	}
	if cfg.Illumina.Original != "/data/original_sheet.csv" {
		t.Errorf("absolute sheet paths must be kept: %q", cfg.Illumina.Original)
	}

	th := cfg.Threshold("ariba_resfinder")
	if th.CoverageMin == nil || *th.CoverageMin != 70 {
		t.Errorf("explicit threshold lost: %+v", th)
	}
	if th.IdentityMin != nil {
		t.Errorf("overriding one bound must not resurrect the default of the other: %+v", th)
	}

	th = cfg.Threshold("ariba_plasmidfinder")
	if th.CoverageMin == nil || *th.CoverageMin != 80 || th.IdentityMin == nil || *th.IdentityMin != 80 {
		t.Errorf("default thresholds missing: %+v", th)
	}

	if th := cfg.Threshold("ariba_mlst"); th.CoverageMin != nil || th.IdentityMin != nil {
		t.Errorf("analyses without thresholds stay unfiltered: %+v", th)
	}

	if cfg.Prefix.Separator != "-" || cfg.Prefix.Tokens != 1 {
		t.Errorf("prefix rule: %+v", cfg.Prefix)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Errorf("expected a ConfigError, got %v", err)
	}
}

func TestLoadConfigMissingSheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("project:\n  name: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var cerr *ConfigError
	if _, err := LoadConfig(path); !errors.As(err, &cerr) {
		t.Errorf("both sheet paths are required, got %v", err)
	}
}
