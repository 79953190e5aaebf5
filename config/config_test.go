package config

import (
	"os"
	"testing"
)

func TestLoadEnv(t *testing.T) {
	// LoadEnv returns nil when no .env file exists
	if err := LoadEnv(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestValidateEnvAllSet(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("DATABASE_URL", "test-db-url")
	defer os.Unsetenv("JWT_SECRET")
	defer os.Unsetenv("DATABASE_URL")

	if err := ValidateEnv(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestValidateEnvMissingJWTSecret(t *testing.T) {
	os.Unsetenv("JWT_SECRET")
	os.Setenv("DATABASE_URL", "test-db-url")
	defer os.Unsetenv("DATABASE_URL")

	if err := ValidateEnv(); err == nil {
		t.Error("expected error for missing JWT_SECRET")
	}
}

func TestValidateEnvMissingDatabaseURL(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Unsetenv("DATABASE_URL")
	defer os.Unsetenv("JWT_SECRET")

	if err := ValidateEnv(); err == nil {
		t.Error("expected error for missing DATABASE_URL")
	}
}

func TestGetEnvDefault(t *testing.T) {
	os.Unsetenv("SOME_UNSET_KEY")
	if v := GetEnv("SOME_UNSET_KEY", "fallback"); v != "fallback" {
		t.Errorf("expected fallback, got %s", v)
	}

	os.Setenv("SOME_SET_KEY", "value")
	defer os.Unsetenv("SOME_SET_KEY")
	if v := GetEnv("SOME_SET_KEY", "fallback"); v != "value" {
		t.Errorf("expected value, got %s", v)
	}
}
