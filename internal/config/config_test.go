package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTetrisConfig()) {
		t.Errorf("embedded defaults differ from DefaultTetrisConfig():\n%+v\n%+v", cfg, DefaultTetrisConfig())
	}
	if err := DefaultTetrisConfig().Validate(); err != nil {
		t.Errorf("DefaultTetrisConfig().Validate() = %v", err)
	}
	if cfg.Difficulty.Enabled {
		t.Error("embedded defaults should keep gravity fixed")
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tetris.yaml")
	data := []byte("timing:\n  drop_delay_ticks: 30\nrender:\n  tile_size: 12\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() error = %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Timing.DropDelayTicks != 30 || cfg.Render.TileSize != 12 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Keys absent from the file keep their defaults
	if cfg.Timing.TickRate != 60 || cfg.Timing.TurnCooldownMS != 200 {
		t.Errorf("defaults lost: %+v", cfg.Timing)
	}
}

func TestLoadTetrisErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("timing:\n  tick_rate: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read config"},
		{"malformed yaml", bad, "cannot parse yaml"},
		{"invalid values", invalid, "tick_rate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := LoadTetris(tc.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %q, expected to contain %q", err, tc.want)
			}
		})
	}
}

func TestValidateScoring(t *testing.T) {
	tests := []struct {
		name    string
		points  []int
		wantErr bool
	}{
		{"classic", []int{0, 40, 100, 300, 1200}, false},
		{"minimal", []int{0, 1, 2, 3, 4}, false},
		{"too few entries", []int{0, 40, 100}, true},
		{"not increasing", []int{0, 100, 100, 300, 1200}, true},
		{"below row count", []int{0, 1, 1, 2, 3}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			cfg.Scoring.LinePoints = tc.points
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Display.Backend = "window"

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "backend: window") {
		t.Errorf("marshalled yaml missing backend:\n%s", data)
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) error = %v", err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Error("round trip changed the configuration")
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParseDifficultyPreset(s); err != nil {
			t.Errorf("ParseDifficultyPreset(%q) error = %v", s, err)
		}
	}
	if _, err := ParseDifficultyPreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: %+v", cfg.Difficulty)
	}

	cfg = DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset produced invalid config: %v", err)
	}
}

func TestRenderLayoutPerBackend(t *testing.T) {
	r := DefaultTetrisConfig().Render

	tests := []struct {
		backend    string
		wantTile   int
		wantMargin int
	}{
		{BackendTerminal, 2, 10},
		{BackendWindow, 24, 6},
		{"", 24, 6},
	}

	for _, tc := range tests {
		tile, margin := r.Layout(tc.backend)
		if tile != tc.wantTile || margin != tc.wantMargin {
			t.Errorf("Layout(%q) = %d, %d, expected %d, %d", tc.backend, tile, margin, tc.wantTile, tc.wantMargin)
		}
	}
}
