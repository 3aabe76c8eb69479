package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	TokenSecret     string
	ShutdownTimeout time.Duration

	// CallbackBaseURL is the public base URL the payment provider calls back on.
	CallbackBaseURL string
	MpesaBaseURL    string

	// Process-wide fallbacks used when the stored settings leave a
	// credential field blank.
	MpesaConsumerKey    string
	MpesaConsumerSecret string
	MpesaPasskey        string
	MpesaShortCode      string

	OrderPrefix    string
	UploadDir      string
	MaxUploadBytes int64
}

const (
	defaultRunAddress      = ":8080"
	defaultTokenSecret     = "change-me-in-production"
	defaultShutdownTimeout = 10 * time.Second
	defaultMpesaBaseURL    = "https://sandbox.safaricom.co.ke"
	defaultOrderPrefix     = "BKH"
	defaultUploadDir       = "uploads"
	defaultMaxUploadBytes  = 5 << 20
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		TokenSecret:         getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		CallbackBaseURL:     getString(lookup, "CALLBACK_BASE_URL", ""),
		MpesaBaseURL:        getString(lookup, "MPESA_BASE_URL", defaultMpesaBaseURL),
		MpesaConsumerKey:    getString(lookup, "MPESA_CONSUMER_KEY", ""),
		MpesaConsumerSecret: getString(lookup, "MPESA_CONSUMER_SECRET", ""),
		MpesaPasskey:        getString(lookup, "MPESA_PASSKEY", ""),
		MpesaShortCode:      getString(lookup, "MPESA_SHORTCODE", ""),
		OrderPrefix:         getString(lookup, "ORDER_PREFIX", defaultOrderPrefix),
		UploadDir:           getString(lookup, "UPLOAD_DIR", defaultUploadDir),
		MaxUploadBytes:      getInt64(lookup, "MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
	}

	fs := flag.NewFlagSet("bakehouse", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for verifying auth tokens")
	fs.StringVar(&cfg.CallbackBaseURL, "callback-base", cfg.CallbackBaseURL, "Public base URL for payment callbacks")
	fs.StringVar(&cfg.MpesaBaseURL, "mpesa-base", cfg.MpesaBaseURL, "M-Pesa API base URL")
	fs.StringVar(&cfg.OrderPrefix, "order-prefix", cfg.OrderPrefix, "Prefix for generated order numbers")
	fs.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "Directory for uploaded images")
	fs.Int64Var(&cfg.MaxUploadBytes, "max-upload", cfg.MaxUploadBytes, "Maximum upload size in bytes")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = string(content)
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.CallbackBaseURL == "" {
		cfg.CallbackBaseURL = "http://localhost" + cfg.RunAddress
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
