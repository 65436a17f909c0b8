package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("T2048_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolateHome(t)

	s, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if want := filepath.Join(home, AppDir, "t2048.db"); s.DBPath != want {
		t.Errorf("DBPath = %q, want %q", s.DBPath, want)
	}
	if s.Profile != "local" {
		t.Errorf("Profile = %q, want local", s.Profile)
	}
	if s.Rules.SkipNoopMoves {
		t.Error("SkipNoopMoves should default to false")
	}
	if s.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", s.Log.Level)
	}
	if s.SSH.Address != ":23234" {
		t.Errorf("SSH.Address = %q", s.SSH.Address)
	}
	if s.SSH.IdleTimeout != 30*time.Minute {
		t.Errorf("SSH.IdleTimeout = %v", s.SSH.IdleTimeout)
	}
}

func TestLoadConfigFile(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`profile: alice
seed: 7
rules:
  skip_noop_moves: true
ssh:
  idle_timeout: 5m
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Profile != "alice" || s.Seed != 7 || !s.Rules.SkipNoopMoves {
		t.Errorf("got %+v", s)
	}
	if s.SSH.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, want 5m", s.SSH.IdleTimeout)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolateHome(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadUserConfigDir(t *testing.T) {
	home := isolateHome(t)
	dir := filepath.Join(home, AppDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("profile: bob\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Profile != "bob" {
		t.Errorf("Profile = %q, want bob", s.Profile)
	}
}

func TestLoadPrecedence(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("profile: file\nlog:\n  level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("T2048_PROFILE", "env")
	t.Setenv("T2048_LOG_LEVEL", "debug")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("profile", "local", "")
	flags.String("log-level", "info", "")
	if err := flags.Parse([]string{"--profile", "flag"}); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path, flags)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Profile != "flag" {
		t.Errorf("Profile = %q, want flag", s.Profile)
	}
	// unset flag must not shadow the environment
	if s.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", s.Log.Level)
	}
}
