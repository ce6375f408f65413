package config

import (
	"strings"
	"testing"
)

func setRequired(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DBNAME", "fitlog_test")
	t.Setenv("SECRET_KEY", "test-secret")
}

func TestLoad_AllRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("IP", "0.0.0.0")
	t.Setenv("PORT", "5000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.MongoDBName != "fitlog_test" {
		t.Errorf("MongoDBName = %q", cfg.MongoDBName)
	}
	if got := cfg.Addr(); got != "0.0.0.0:5000" {
		t.Errorf("Addr() = %q, want %q", got, "0.0.0.0:5000")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("IP", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := cfg.Addr(); got != ":8080" {
		t.Errorf("Addr() = %q, want %q", got, ":8080")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("SECRET_KEY", "")
	t.Setenv("MONGO_DBNAME", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() succeeded with missing required variables")
	}
	for _, key := range []string{"SECRET_KEY", "MONGO_DBNAME"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not name %s", err, key)
		}
	}
}
