package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "experiment.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseJSONConfigFromPath(t *testing.T) {
	path := writeConfig(t, `{
		"output_dir": "out",
		"measurements": [{"name": "mass", "unit": "g", "data": [1.2, 1.4, 1.3]}],
		"growth": [
			{"name": "inline", "times": [0, 20], "quantities": [100, 200]},
			{"name": "sheet", "file": "growth.csv"},
			{"name": "bucket", "file": "gs://lab/growth.csv"}
		],
		"plate_counts": [{"name": "E. coli", "dilutions": {"-4": null, "-5": 354, "-6": 35}}],
		"contingency": [{"name": "treatment", "observed": [[10, 20], [30, 40]]}]
	}`)

	cfg, err := ParseJSONConfigFromPath(path)
	if err != nil {
		t.Fatal(err)
	}

	dir := filepath.Dir(path)
	if cfg.OutputDir != filepath.Join(dir, "out") {
		t.Errorf("got output dir %q", cfg.OutputDir)
	}
	if cfg.Alpha != DefaultAlpha {
		t.Errorf("got alpha %v", cfg.Alpha)
	}
	if cfg.Growth[1].File != filepath.Join(dir, "growth.csv") {
		t.Errorf("got growth file %q", cfg.Growth[1].File)
	}
	if cfg.Growth[2].File != "gs://lab/growth.csv" {
		t.Errorf("gs:// paths should be left alone, got %q", cfg.Growth[2].File)
	}

	d := cfg.PlateCounts[0].Dilutions
	if len(d) != 3 || d[-4].Valid || !d[-5].Valid || d[-5].Int64 != 354 {
		t.Errorf("got dilutions %+v", d)
	}
}

func TestParseJSONConfigRejects(t *testing.T) {
	for name, content := range map[string]string{
		"syntax":         `{"alpha": }`,
		"unknown field":  `{"alpah": 0.05}`,
		"alpha":          `{"alpha": 0.04}`,
		"no name":        `{"measurements": [{"data": [1]}]}`,
		"two sources":    `{"measurements": [{"name": "m", "file": "a.csv", "data": [1]}]}`,
		"no source":      `{"plate_counts": [{"name": "p"}]}`,
		"growth lengths": `{"growth": [{"name": "g", "times": [0, 1], "quantities": [1]}]}`,
	} {
		if _, err := ParseJSONConfigFromPath(writeConfig(t, content)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := ParseJSONConfigFromPath(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error")
	}
}
