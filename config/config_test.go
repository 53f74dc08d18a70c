package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/lixenwraith/beatline/parameter"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	viper.Reset()
	if err := Load(t.TempDir()); err != nil {
		t.Fatalf("Load with no file errored: %v", err)
	}

	if got := GetString("logLevel"); got != "info" {
		t.Errorf("logLevel = %q, want info", got)
	}
	if got := GetString("scroll.direction"); got != "down" {
		t.Errorf("scroll.direction = %q, want down", got)
	}
	if got := GetFloat("scroll.speed"); got != parameter.DefaultScrollSpeed {
		t.Errorf("scroll.speed = %v, want %v", got, parameter.DefaultScrollSpeed)
	}
	if got := GetInt("field.prewarm"); got != parameter.DefaultSpritePrewarm {
		t.Errorf("field.prewarm = %d, want %d", got, parameter.DefaultSpritePrewarm)
	}
	if !GetBool("audio.enabled") {
		t.Error("audio.enabled default should be true")
	}
	if got := GetInt("frame.intervalMs"); got != 16 {
		t.Errorf("frame.intervalMs = %d, want 16", got)
	}
	if got := GetFloat("audio.clickBarFreq"); got != parameter.ClickBarFreq {
		t.Errorf("audio.clickBarFreq = %v, want %v", got, parameter.ClickBarFreq)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	body := `
logLevel = "debug"

[scroll]
direction = "up"
speed = 2.0
`
	if err := os.WriteFile(filepath.Join(dir, "beatline.toml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Load(dir); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := GetString("logLevel"); got != "debug" {
		t.Errorf("logLevel = %q, want debug", got)
	}
	if got := GetString("scroll.direction"); got != "up" {
		t.Errorf("scroll.direction = %q, want up", got)
	}
	if got := GetFloat("scroll.speed"); got != 2.0 {
		t.Errorf("scroll.speed = %v, want 2.0", got)
	}
	// Untouched keys keep their defaults
	if got := GetFloat("scroll.unitsPerRow"); got != parameter.DefaultUnitsPerRow {
		t.Errorf("scroll.unitsPerRow = %v, want default %v", got, parameter.DefaultUnitsPerRow)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "beatline.toml"), []byte("not [valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(dir); err == nil {
		t.Error("expected error for malformed config file")
	}
}
