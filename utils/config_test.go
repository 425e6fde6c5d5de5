package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.BoardSide != 200 {
		t.Errorf("default board side = %d, want 200", config.BoardSide)
	}
	if config.TickRate < MinTickRate || config.TickRate > MaxTickRate {
		t.Errorf("default tick rate %d outside [%d, %d]", config.TickRate, MinTickRate, MaxTickRate)
	}
	if config.SeedDensity <= 0 || config.SeedDensity >= 1 {
		t.Errorf("default seed density %v not a sensible probability", config.SeedDensity)
	}
	if config.CellColor == config.BackgroundCol {
		t.Error("default cell color equals background color")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"board_side": 64, "tick_rate": 30, "seed_density": 0.25}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if config.BoardSide != 64 {
		t.Errorf("board side = %d, want 64", config.BoardSide)
	}
	if config.TickRate != 30 {
		t.Errorf("tick rate = %d, want 30", config.TickRate)
	}
	if config.SeedDensity != 0.25 {
		t.Errorf("seed density = %v, want 0.25", config.SeedDensity)
	}
	// Fields absent from the file keep their defaults.
	if config.PixelSize != DefaultConfig().PixelSize {
		t.Errorf("pixel size = %d, want default %d", config.PixelSize, DefaultConfig().PixelSize)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if config.BoardSide != DefaultConfig().BoardSide {
		t.Error("missing file should still return defaults")
	}
	// Absence must stay distinguishable through the wrapping: it is the
	// one error callers may swallow by falling back to defaults.
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("missing-file error does not unwrap to not-exist: %v", err)
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
	// A present-but-broken file must not look like absence, or callers
	// would silently run with defaults instead of failing.
	if os.IsNotExist(errors.Cause(err)) {
		t.Errorf("parse error unwraps to not-exist: %v", err)
	}
}

func TestClamped(t *testing.T) {
	config := Config{
		BoardSide:   1,
		PixelSize:   0,
		TickRate:    100000,
		SeedDensity: 3.5,
	}.Clamped()

	defaults := DefaultConfig()
	if config.BoardSide != defaults.BoardSide {
		t.Errorf("board side = %d, want default %d", config.BoardSide, defaults.BoardSide)
	}
	if config.PixelSize != defaults.PixelSize {
		t.Errorf("pixel size = %d, want default %d", config.PixelSize, defaults.PixelSize)
	}
	if config.TickRate != MaxTickRate {
		t.Errorf("tick rate = %d, want clamped %d", config.TickRate, MaxTickRate)
	}
	if config.SeedDensity != defaults.SeedDensity {
		t.Errorf("seed density = %v, want default %v", config.SeedDensity, defaults.SeedDensity)
	}
}

func TestClampTickRate(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{in: -5, want: MinTickRate},
		{in: 0, want: MinTickRate},
		{in: 1, want: 1},
		{in: 60, want: 60},
		{in: 240, want: 240},
		{in: 241, want: MaxTickRate},
	}

	for _, tt := range tests {
		if got := ClampTickRate(tt.in); got != tt.want {
			t.Errorf("ClampTickRate(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
