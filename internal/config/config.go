package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix scopes environment overrides, e.g. EXPENSES_DB_PATH.
const EnvPrefix = "EXPENSES"

type Config struct {
	Port     string
	LogLevel string

	DBPath    string
	LedgerDir string

	SigningKey string
	TokenTTL   time.Duration
	BcryptCost int

	WSInterval time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "users.db")
	v.SetDefault("ledger.dir", "data")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("ws.interval", 2*time.Second)
}

// Load reads configs/config.yml (if present) from each of paths, then applies
// EXPENSES_* environment overrides. A .env file in the working directory is
// loaded first when it exists.
func Load(paths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:       v.GetString("port"),
		LogLevel:   v.GetString("log.level"),
		DBPath:     v.GetString("db.path"),
		LedgerDir:  v.GetString("ledger.dir"),
		SigningKey: v.GetString("auth.signing_key"),
		TokenTTL:   v.GetDuration("auth.token_ttl"),
		BcryptCost: v.GetInt("auth.bcrypt_cost"),
		WSInterval: v.GetDuration("ws.interval"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.SigningKey) == "" {
		problems = append(problems, "auth.signing_key must be set")
	}
	if c.DBPath == "" {
		problems = append(problems, "db.path must be set")
	}
	if c.LedgerDir == "" {
		problems = append(problems, "ledger.dir must be set")
	}
	if c.TokenTTL <= 0 {
		problems = append(problems, fmt.Sprintf("auth.token_ttl must be positive, got %s", c.TokenTTL))
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		problems = append(problems, fmt.Sprintf("auth.bcrypt_cost must be in [4, 31], got %d", c.BcryptCost))
	}
	if c.WSInterval <= 0 {
		problems = append(problems, fmt.Sprintf("ws.interval must be positive, got %s", c.WSInterval))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}
