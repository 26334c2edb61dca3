package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret        string `yaml:"secret"`
	Issuer        string `yaml:"issuer"`
	Audience      string `yaml:"audience"`
	SessionTTL    string `yaml:"session_ttl"`
	RememberMeTTL string `yaml:"remember_me_ttl"`
}

type PasswordConfig struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

type ConfirmationConfig struct {
	TTL          string `yaml:"ttl"`
	Length       int    `yaml:"length"`
	MaxAttempts  int    `yaml:"max_attempts"`
	ResendWindow string `yaml:"resend_window"`
	LinkBaseURL  string `yaml:"link_base_url"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App          AppConfig          `yaml:"app"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	JWT          JWTConfig          `yaml:"jwt"`
	Password     PasswordConfig     `yaml:"password"`
	Confirmation ConfirmationConfig `yaml:"confirmation"`
	Twilio       TwilioConfig       `yaml:"twilio"`
	Casbin       CasbinConfig       `yaml:"casbin"`
}

// Config is the flattened runtime configuration. Components receive the
// values they need through their constructors; nothing reads this globally.
type Config struct {
	Port    string
	GinMode string

	DSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret     string
	JWTIssuer     string
	JWTAudience   string
	SessionTTL    time.Duration
	RememberMeTTL time.Duration

	BcryptCost int

	ConfirmationTTL          time.Duration
	ConfirmationLength       int
	ConfirmationMaxAttempts  int
	ConfirmationResendWindow time.Duration
	ConfirmationLinkBaseURL  string

	TwilioSID   string
	TwilioToken string
	TwilioFrom  string

	CasbinModelPath string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	return LoadFrom(env("AUTHSVC_CONFIG", "config/config.yml"))
}

func LoadFrom(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	sessionTTL, err := time.ParseDuration(configFile.JWT.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT session TTL: %w", err)
	}
	rememberTTL, err := time.ParseDuration(configFile.JWT.RememberMeTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT remember-me TTL: %w", err)
	}
	confirmTTL, err := time.ParseDuration(configFile.Confirmation.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid confirmation TTL: %w", err)
	}
	resendWindow, err := time.ParseDuration(configFile.Confirmation.ResendWindow)
	if err != nil {
		return nil, fmt.Errorf("invalid confirmation resend window: %w", err)
	}

	secret := env("JWT_SECRET", configFile.JWT.Secret)
	// HS256 forgery resistance depends on key length: require 256 bits.
	if len(secret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 bytes, got %d", len(secret))
	}

	return &Config{
		Port:    fmt.Sprintf("%d", configFile.App.Port),
		GinMode: configFile.App.GinMode,

		DSN: env("DATABASE_DSN", configFile.Database.DSN),

		RedisAddr:     env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword: env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:       configFile.Redis.DB,

		JWTSecret:     secret,
		JWTIssuer:     configFile.JWT.Issuer,
		JWTAudience:   configFile.JWT.Audience,
		SessionTTL:    sessionTTL,
		RememberMeTTL: rememberTTL,

		BcryptCost: configFile.Password.BcryptCost,

		ConfirmationTTL:          confirmTTL,
		ConfirmationLength:       configFile.Confirmation.Length,
		ConfirmationMaxAttempts:  configFile.Confirmation.MaxAttempts,
		ConfirmationResendWindow: resendWindow,
		ConfirmationLinkBaseURL:  configFile.Confirmation.LinkBaseURL,

		TwilioSID:   env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken: env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:  configFile.Twilio.FromNumber,

		CasbinModelPath: configFile.Casbin.ModelPath,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
