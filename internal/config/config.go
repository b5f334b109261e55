package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/kirillkom/docintake-eval/internal/core/domain"
)

type Config struct {
	APIURL      string
	CasesPath   string
	FixturesDir string

	AutoApproveReview bool
	Reviewer          string

	PollInterval   time.Duration
	PollTimeout    time.Duration
	RequestTimeout time.Duration
	RequestRPS     float64

	RetryMaxAttempts int
	BreakerEnabled   bool

	ReportPath  string
	LogLevel    string
	MetricsPort string
}

func Load() (Config, error) {
	cfg := Config{
		APIURL:      mustEnv("EVAL_API_URL", "http://localhost:8080"),
		CasesPath:   mustEnv("EVAL_CASES_PATH", "./cases.json"),
		FixturesDir: mustEnv("EVAL_FIXTURES_DIR", "."),

		AutoApproveReview: mustEnvBool("EVAL_AUTO_APPROVE_REVIEW", false),
		Reviewer:          mustEnv("EVAL_REVIEWER", "eval-runner"),

		PollInterval:   time.Duration(mustEnvInt("EVAL_POLL_INTERVAL_SEC", 2)) * time.Second,
		PollTimeout:    time.Duration(mustEnvInt("EVAL_POLL_TIMEOUT_SEC", 180)) * time.Second,
		RequestTimeout: time.Duration(mustEnvInt("EVAL_REQUEST_TIMEOUT_SEC", 20)) * time.Second,
		RequestRPS:     mustEnvFloat("EVAL_REQUEST_RPS", 10),

		RetryMaxAttempts: mustEnvInt("EVAL_RETRY_MAX_ATTEMPTS", 3),
		BreakerEnabled:   mustEnvBool("EVAL_BREAKER_ENABLED", true),

		ReportPath:  mustEnv("EVAL_REPORT_PATH", ""),
		LogLevel:    mustEnv("LOG_LEVEL", "info"),
		MetricsPort: mustEnv("METRICS_PORT", ""),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.PollInterval <= 0 {
		return domain.WrapError(domain.ErrConfiguration, "load config", errors.New("EVAL_POLL_INTERVAL_SEC must be > 0"))
	}
	if c.PollTimeout <= 0 {
		return domain.WrapError(domain.ErrConfiguration, "load config", errors.New("EVAL_POLL_TIMEOUT_SEC must be > 0"))
	}
	if c.RequestTimeout <= 0 {
		return domain.WrapError(domain.ErrConfiguration, "load config", errors.New("EVAL_REQUEST_TIMEOUT_SEC must be > 0"))
	}
	return nil
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
