package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"EATSPLIT_THEME", "EATSPLIT_SEED_FILE", "EATSPLIT_IMAGE_BASE", "EATSPLIT_LOG_FILE", "EATSPLIT_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	chdir(t, t.TempDir())

	cfg := Load()
	if cfg.Theme != "classic" || cfg.ImageBase != "https://i.pravatar.cc/48" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Level() != slog.LevelInfo {
		t.Fatalf("level = %v", cfg.Level())
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	t.Setenv("EATSPLIT_THEME", "")
	os.Unsetenv("EATSPLIT_THEME")
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("EATSPLIT_THEME=neon\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	if cfg := Load(); cfg.Theme != "neon" {
		t.Fatalf("theme = %q, want neon", cfg.Theme)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{Theme: "mono", ImageBase: "https://example.com/a", LogLevel: "debug"}
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad theme", mutate: func(c *Config) { c.Theme = "rainbow" }, wantErr: "invalid theme"},
		{name: "empty image", mutate: func(c *Config) { c.ImageBase = "" }, wantErr: "cannot be empty"},
		{name: "image scheme", mutate: func(c *Config) { c.ImageBase = "ftp://x/y" }, wantErr: "scheme"},
		{name: "missing seed", mutate: func(c *Config) { c.SeedFile = "/nonexistent/seed.json" }, wantErr: "seed file"},
		{name: "log dir", mutate: func(c *Config) { c.LogFile = "/nonexistent/dir/x.log" }, wantErr: "log file directory"},
		{name: "log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
