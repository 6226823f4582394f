package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
// All gateway credentials are optional: missing payment credentials disable
// online payment, missing messaging credentials disable notifications.
type Config struct {
	RunAddress string

	PaystackSecretKey string
	PaystackBaseURL   string
	ExpectedCurrency  string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioBaseURL    string
	TwilioFromNumber string
	AdminPhoneNumber string

	CountryCallingCode string

	GatewayTimeout  time.Duration
	NotifyWorkers   int
	NotifyQueueSize int
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":3000"
	defaultPaystackBaseURL = "https://api.paystack.co"
	defaultTwilioBaseURL   = "https://api.twilio.com"
	defaultCurrency        = "GHS"
	defaultCountryCode     = "233"
	defaultGatewayTimeout  = 5 * time.Second
	defaultNotifyWorkers   = 2
	defaultNotifyQueueSize = 64
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", ""),
		PaystackSecretKey:  getString(lookup, "PAYSTACK_SECRET_KEY", ""),
		PaystackBaseURL:    getString(lookup, "PAYSTACK_BASE_URL", defaultPaystackBaseURL),
		ExpectedCurrency:   getString(lookup, "EXPECTED_CURRENCY", defaultCurrency),
		TwilioAccountSID:   getString(lookup, "TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:    getString(lookup, "TWILIO_AUTH_TOKEN", ""),
		TwilioBaseURL:      getString(lookup, "TWILIO_BASE_URL", defaultTwilioBaseURL),
		TwilioFromNumber:   getString(lookup, "TWILIO_PHONE_NUMBER", ""),
		AdminPhoneNumber:   getString(lookup, "ADMIN_PHONE_NUMBER", ""),
		CountryCallingCode: getString(lookup, "COUNTRY_CALLING_CODE", defaultCountryCode),
		GatewayTimeout:     getDuration(lookup, "GATEWAY_TIMEOUT", defaultGatewayTimeout),
		NotifyWorkers:      getInt(lookup, "NOTIFY_WORKERS", defaultNotifyWorkers),
		NotifyQueueSize:    getInt(lookup, "NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	// PORT keeps compatibility with PaaS-style deployments.
	if cfg.RunAddress == "" {
		if port, ok := lookup("PORT"); ok && port != "" {
			cfg.RunAddress = ":" + port
		} else {
			cfg.RunAddress = defaultRunAddress
		}
	}

	fs := flag.NewFlagSet("orderapi", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		gatewayTimeoutStr  = cfg.GatewayTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.PaystackBaseURL, "paystack-url", cfg.PaystackBaseURL, "Payment gateway base URL")
	fs.StringVar(&cfg.TwilioBaseURL, "twilio-url", cfg.TwilioBaseURL, "Messaging gateway base URL")
	fs.StringVar(&cfg.ExpectedCurrency, "currency", cfg.ExpectedCurrency, "Currency accepted for online payments")
	fs.IntVar(&cfg.NotifyWorkers, "notify-workers", cfg.NotifyWorkers, "Number of concurrent notification workers")
	fs.IntVar(&cfg.NotifyQueueSize, "notify-queue", cfg.NotifyQueueSize, "Notification queue capacity")
	fs.StringVar(&gatewayTimeoutStr, "gateway-timeout", gatewayTimeoutStr, "Timeout for outbound gateway calls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.GatewayTimeout, err = time.ParseDuration(gatewayTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid gateway timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("PAYSTACK_SECRET_KEY_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read paystack secret file: %w", err)
		}
		// Secrets mounted as files usually carry a trailing newline.
		cfg.PaystackSecretKey = strings.TrimSpace(string(content))
	}

	if cfg.NotifyWorkers <= 0 {
		cfg.NotifyWorkers = defaultNotifyWorkers
	}

	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = defaultNotifyQueueSize
	}

	if cfg.GatewayTimeout <= 0 {
		cfg.GatewayTimeout = defaultGatewayTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.ExpectedCurrency == "" {
		cfg.ExpectedCurrency = defaultCurrency
	}

	if cfg.CountryCallingCode == "" {
		cfg.CountryCallingCode = defaultCountryCode
	}

	return cfg, nil
}

// MessagingConfigured reports whether the Twilio credentials needed to send
// any message at all are present.
func (c *Config) MessagingConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

// PaymentConfigured reports whether online payment verification is available.
func (c *Config) PaymentConfigured() bool {
	return c.PaystackSecretKey != ""
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
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
