// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	cfg "github.com/toeirei/secretsanta/internal/config"
)

// isolate points the user config dir at a temp dir so a real
// ~/.config/secretsanta/secretsanta.yaml cannot leak into tests.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	return tmp
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)
	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(got.Participants) != len(cfg.DefaultParticipants) {
		t.Fatalf("expected %d default participants, got %d", len(cfg.DefaultParticipants), len(got.Participants))
	}
	if got.Token.Length != 8 || got.Match.MaxAttempts != 1000 {
		t.Fatalf("unexpected defaults: token=%d attempts=%d", got.Token.Length, got.Match.MaxAttempts)
	}
	if got.Event.Group != "La Famillia" || got.Event.Year != 2025 || len(got.Event.Rules) != 3 {
		t.Fatalf("unexpected event defaults: %+v", got.Event)
	}
	if got.Mapping.Path != "" {
		t.Fatalf("mapping export must be disabled by default, got %q", got.Mapping.Path)
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	yaml := "participants:\n  - Alice\n  - Bob\n  - Chloé\nlanguage: en\noutput:\n  dir: site\n  base_url: https://example.org/santa\nevent:\n  group: Office\n  year: 2026\n"
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if len(got.Participants) != 3 || got.Participants[2] != "Chloé" {
		t.Fatalf("unexpected participants %v", got.Participants)
	}
	if got.Language != "en" || got.Output.Dir != "site" || got.Output.BaseURL != "https://example.org/santa" {
		t.Fatalf("unexpected config %+v", got)
	}
	if got.Event.Group != "Office" || got.Event.Year != 2026 {
		t.Fatalf("unexpected event %+v", got.Event)
	}
	// Keys absent from the file keep their defaults.
	if got.Event.Location != "Les Quinaux" {
		t.Fatalf("expected default location, got %q", got.Event.Location)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(file, []byte("participants: [unclosed\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}

func TestLoadConfig_EnvAndFlagsOverride(t *testing.T) {
	isolate(t)
	t.Setenv("SECRETSANTA_OUTPUT_DIR", "from-env")
	t.Setenv("SECRETSANTA_MATCH_SEED", "77")

	cmd := &cobra.Command{}
	cmd.Flags().String("out", ".", "")
	cmd.Flags().Int("max-attempts", 1000, "")
	if err := cmd.Flags().Set("max-attempts", "5"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Output.Dir != "from-env" {
		t.Fatalf("expected env to win over unset flag, got %q", got.Output.Dir)
	}
	if got.Match.Seed != 77 {
		t.Fatalf("expected seed 77 from env, got %d", got.Match.Seed)
	}
	if got.Match.MaxAttempts != 5 {
		t.Fatalf("expected flag value 5, got %d", got.Match.MaxAttempts)
	}
}

func TestWriteConfigFile_CreatesAndRefusesOverwrite(t *testing.T) {
	tmp := isolate(t)
	userPath, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if filepath.Base(userPath) != "secretsanta.yaml" {
		t.Fatalf("unexpected config file name %s", userPath)
	}
	path := filepath.Join(tmp, "secretsanta", "secretsanta.yaml")

	c := cfg.Config{Participants: []string{"A", "B"}, Language: "en"}
	if err := cfg.WriteConfigFile(&c, path, false); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s, stat error: %v", path, err)
	}

	if err := cfg.WriteConfigFile(&c, path, false); !errors.Is(err, cfg.ErrConfigExists) {
		t.Fatalf("expected ErrConfigExists, got %v", err)
	}
	if err := cfg.WriteConfigFile(&c, path, true); err != nil {
		t.Fatalf("forced write failed: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(got.Participants) != 2 || got.Language != "en" {
		t.Fatalf("round trip lost data: %+v", got)
	}
}

func TestValidate(t *testing.T) {
	base := cfg.Config{Output: cfg.Output{Dir: "."}, Token: cfg.Token{Length: 8}, Match: cfg.Match{MaxAttempts: 10}}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	short := base
	short.Token.Length = 2
	if err := short.Validate(); err == nil {
		t.Fatalf("expected short token length to be rejected")
	}

	noAttempts := base
	noAttempts.Match.MaxAttempts = 0
	if err := noAttempts.Validate(); err == nil {
		t.Fatalf("expected zero attempts to be rejected")
	}

	noDir := base
	noDir.Output.Dir = ""
	if err := noDir.Validate(); err == nil {
		t.Fatalf("expected empty output dir to be rejected")
	}
}

func TestParticipantList_Trims(t *testing.T) {
	c := cfg.Config{Participants: []string{" Annie ", "Léon"}}
	got := c.ParticipantList()
	if got[0] != "Annie" || got[1] != "Léon" {
		t.Fatalf("unexpected participants %v", got)
	}
}
