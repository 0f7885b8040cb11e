package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"PORT", "ENV", "DATABASE_URL", "OBJECT_STORE", "TEMPLATE_PATHS", "EXPORT_RATE_PER_SEC", "EXPORT_BURST", "CORS_ALLOW_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.Env != "dev" || cfg.ObjectStoreType != "local" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.TemplatePaths) != 0 {
		t.Fatalf("expected no template paths, got %v", cfg.TemplatePaths)
	}
	if cfg.ExportRatePerSec != 2 || cfg.ExportBurst != 5 {
		t.Fatalf("unexpected export limits: %v %v", cfg.ExportRatePerSec, cfg.ExportBurst)
	}
	if len(cfg.CORSAllowOrigin) != 1 || cfg.CORSAllowOrigin[0] != "http://localhost:5173" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSAllowOrigin)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ENV", "prod")
	t.Setenv("OBJECT_STORE", "S3")
	t.Setenv("TEMPLATE_PATHS", " a.html , ,b.html")
	t.Setenv("EXPORT_BURST", "nope")
	t.Setenv("DATABASE_URL", "sqlite:drafts.db")

	cfg := Load()
	if cfg.Env != "production" || cfg.ObjectStoreType != "s3" {
		t.Fatalf("unexpected normalization: %+v", cfg)
	}
	if len(cfg.TemplatePaths) != 2 || cfg.TemplatePaths[0] != "a.html" || cfg.TemplatePaths[1] != "b.html" {
		t.Fatalf("unexpected template paths: %v", cfg.TemplatePaths)
	}
	if cfg.ExportBurst != 5 {
		t.Fatalf("expected invalid burst to fall back, got %d", cfg.ExportBurst)
	}
	if cfg.DatabaseURL != "sqlite:drafts.db" {
		t.Fatalf("unexpected database url: %q", cfg.DatabaseURL)
	}
}

func TestLoadReadsDotEnvWithoutOverriding(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=9090\nS3_BUCKET=\"exports\"\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("PORT", "7070")
	t.Setenv("S3_BUCKET", "")
	os.Unsetenv("S3_BUCKET")

	cfg := Load()
	if cfg.Port != "7070" {
		t.Fatalf("expected env to win, got %q", cfg.Port)
	}
	if cfg.S3Bucket != "exports" {
		t.Fatalf("expected bucket from .env, got %q", cfg.S3Bucket)
	}
}
