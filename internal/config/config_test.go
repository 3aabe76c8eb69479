package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func envMap(vars map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, envMap(map[string]string{
		"DATABASE_URI": "postgres://localhost/bakehouse",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":8080" {
		t.Fatalf("unexpected run address %q", cfg.RunAddress)
	}
	if cfg.OrderPrefix != "BKH" {
		t.Fatalf("unexpected order prefix %q", cfg.OrderPrefix)
	}
	if cfg.MpesaBaseURL != "https://sandbox.safaricom.co.ke" {
		t.Fatalf("unexpected mpesa base %q", cfg.MpesaBaseURL)
	}
	if cfg.CallbackBaseURL != "http://localhost:8080" {
		t.Fatalf("unexpected callback base %q", cfg.CallbackBaseURL)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout %v", cfg.ShutdownTimeout)
	}
}

func TestLoadRequiresDatabaseURI(t *testing.T) {
	if _, err := load(nil, envMap(nil)); err == nil {
		t.Fatal("expected error without database URI")
	}
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := load(
		[]string{"-a", ":9090", "-d", "postgres://flag/db", "-callback-base", "https://shop.example.com"},
		envMap(map[string]string{
			"RUN_ADDRESS":  ":8081",
			"DATABASE_URI": "postgres://env/db",
		}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":9090" {
		t.Fatalf("flag must win, got %q", cfg.RunAddress)
	}
	if cfg.DatabaseURI != "postgres://flag/db" {
		t.Fatalf("flag must win, got %q", cfg.DatabaseURI)
	}
	if cfg.CallbackBaseURL != "https://shop.example.com" {
		t.Fatalf("unexpected callback base %q", cfg.CallbackBaseURL)
	}
}

func TestLoadTokenSecretFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("file-secret"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	cfg, err := load(nil, envMap(map[string]string{
		"DATABASE_URI":      "postgres://localhost/bakehouse",
		"TOKEN_SECRET":      "env-secret",
		"TOKEN_SECRET_FILE": path,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TokenSecret != "file-secret" {
		t.Fatalf("secret file must win, got %q", cfg.TokenSecret)
	}
}

func TestLoadMpesaFallbacks(t *testing.T) {
	cfg, err := load(nil, envMap(map[string]string{
		"DATABASE_URI":          "postgres://localhost/bakehouse",
		"MPESA_CONSUMER_KEY":    "key",
		"MPESA_CONSUMER_SECRET": "secret",
		"MPESA_PASSKEY":         "passkey",
		"MPESA_SHORTCODE":       "174379",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MpesaConsumerKey != "key" || cfg.MpesaShortCode != "174379" {
		t.Fatalf("unexpected mpesa config: %+v", cfg)
	}
}
