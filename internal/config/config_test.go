package config

import (
	"testing"
	"time"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetDatabasePath() != "./db.sqlite3" {
		t.Fatalf("unexpected default database path: %s", cfg.GetDatabasePath())
	}
	if cfg.GetUploadPath() != "./uploads" {
		t.Fatalf("unexpected default upload path: %s", cfg.GetUploadPath())
	}
	if cfg.GetResultPath() != "./results" {
		t.Fatalf("unexpected default result path: %s", cfg.GetResultPath())
	}
	if cfg.GetMaxFileSize() != 50*1024*1024 {
		t.Fatalf("unexpected default max file size: %d", cfg.GetMaxFileSize())
	}
	if cfg.GetSessionTTL() != 24*time.Hour {
		t.Fatalf("unexpected default session TTL: %v", cfg.GetSessionTTL())
	}
	if cfg.GetArtifactTTL() != 24*time.Hour {
		t.Fatalf("unexpected default artifact TTL: %v", cfg.GetArtifactTTL())
	}
	if cfg.GetSweepInterval() != time.Hour {
		t.Fatalf("unexpected default sweep interval: %v", cfg.GetSweepInterval())
	}
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_PATH", "/tmp/test.sqlite3")
	t.Setenv("MAX_FILE_SIZE", "1024")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("ARTIFACT_TTL", "0s")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9999" {
		t.Fatalf("expected port 9999, got %s", cfg.GetServerPort())
	}
	if cfg.GetDatabasePath() != "/tmp/test.sqlite3" {
		t.Fatalf("unexpected database path: %s", cfg.GetDatabasePath())
	}
	if cfg.GetMaxFileSize() != 1024 {
		t.Fatalf("expected max file size 1024, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetSessionTTL() != 30*time.Minute {
		t.Fatalf("expected session TTL 30m, got %v", cfg.GetSessionTTL())
	}
	if cfg.GetArtifactTTL() != 0 {
		t.Fatalf("expected artifact TTL 0, got %v", cfg.GetArtifactTTL())
	}
}

func TestNewConfig_SessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "configured-secret")
	cfg := NewConfig()
	if string(cfg.GetSessionSecret()) != "configured-secret" {
		t.Fatalf("expected secret from env, got %q", cfg.GetSessionSecret())
	}
	if cfg.SessionSecretGenerated() {
		t.Fatalf("configured secret must not be reported as generated")
	}
}

func TestNewConfig_GeneratedSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	first := NewConfig()
	second := NewConfig()

	if len(first.GetSessionSecret()) == 0 {
		t.Fatalf("expected a generated secret")
	}
	if string(first.GetSessionSecret()) == string(second.GetSessionSecret()) {
		t.Fatalf("expected generated secrets to differ")
	}
	if !first.SessionSecretGenerated() {
		t.Fatalf("generated secret must be reported so startup can warn")
	}
}
