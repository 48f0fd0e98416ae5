package main

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// ---------------------------------------------------------------------------
// applyFlags
// ---------------------------------------------------------------------------

func TestApplyFlags_Defaults(t *testing.T) {
	cfg, err := applyFlags(config.NewConfig())
	if err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}
	if cfg.Verbosity != config.GameEvents {
		t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, config.GameEvents)
	}
	if !cfg.Autosave {
		t.Error("Autosave = false; want true")
	}
	if cfg.Theme.Glyphs != config.UnicodeGlyphs {
		t.Errorf("Glyphs = %+v; want unicode", cfg.Theme.Glyphs)
	}
}

func TestApplyFlags_Overrides(t *testing.T) {
	defer saveRestoreInt(verbosity, 2)()
	defer saveRestoreString(saveFile, "/tmp/game.json")()
	defer saveRestoreBool(noAutosave, true)()
	defer saveRestoreBool(letters, true)()

	cfg, err := applyFlags(config.NewConfig())
	if err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}
	if cfg.Verbosity != config.Commentary {
		t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, config.Commentary)
	}
	if cfg.SaveFile != "/tmp/game.json" {
		t.Errorf("SaveFile = %q; want /tmp/game.json", cfg.SaveFile)
	}
	if cfg.Autosave {
		t.Error("Autosave = true; want false")
	}
	if cfg.Theme.Glyphs != config.LetterGlyphs {
		t.Errorf("Glyphs = %+v; want letters", cfg.Theme.Glyphs)
	}
}

func TestApplyFlags_PlainUsesLetters(t *testing.T) {
	defer saveRestoreBool(plainMode, true)()

	cfg, err := applyFlags(config.NewConfig())
	if err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}
	if cfg.Theme.Glyphs != config.LetterGlyphs {
		t.Errorf("Glyphs = %+v; want letters", cfg.Theme.Glyphs)
	}
}

func TestApplyFlags_BadVerbosity(t *testing.T) {
	defer saveRestoreInt(verbosity, 5)()

	if _, err := applyFlags(config.NewConfig()); err == nil {
		t.Error("applyFlags() with -v 5 should fail")
	}
}
