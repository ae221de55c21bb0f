package config

import (
	"os"
	"testing"
)

func clearRequiredEnv() {
	os.Unsetenv("MYSQL_DSN")
	os.Unsetenv("MONGO_URI")
	os.Unsetenv("JWT_SECRET")
}

func TestLoadValid(t *testing.T) {
	clearRequiredEnv()
	os.Setenv("MYSQL_DSN", "user:pass@tcp(localhost:3306)/golf")
	os.Setenv("MONGO_URI", "mongodb://localhost:27017")
	os.Setenv("JWT_SECRET", "test-secret")
	defer clearRequiredEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default Port '8080', got %q", cfg.Server.Port)
	}
	if cfg.Sim.DefaultCutSize != 65 {
		t.Errorf("expected default Sim.DefaultCutSize 65, got %d", cfg.Sim.DefaultCutSize)
	}
	if cfg.Seed.CourseSeedPath != "./seed/courses.json" {
		t.Errorf("expected default Seed.CourseSeedPath, got %q", cfg.Seed.CourseSeedPath)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	clearRequiredEnv()

	cfg, err := Load()
	if err == nil {
		t.Error("expected error for missing required configuration, got none")
	}
	if cfg != nil {
		t.Error("expected nil config on error")
	}
}

func TestLoadRespectsSimOverrides(t *testing.T) {
	clearRequiredEnv()
	os.Setenv("MYSQL_DSN", "user:pass@tcp(localhost:3306)/golf")
	os.Setenv("MONGO_URI", "mongodb://localhost:27017")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("SIM_DEFAULT_CUT_SIZE", "70")
	defer clearRequiredEnv()
	defer os.Unsetenv("SIM_DEFAULT_CUT_SIZE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Sim.DefaultCutSize != 70 {
		t.Errorf("expected overridden Sim.DefaultCutSize 70, got %d", cfg.Sim.DefaultCutSize)
	}
}
