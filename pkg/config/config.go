package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable the app reads.
	EnvPrefix = "FASHIONSALES"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FASHIONSALES_APP_ENV" default:"dev"`
	Port         string `envconfig:"FASHIONSALES_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"FASHIONSALES_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FASHIONSALES_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// DBConfig selects the backing store. The default is the embedded SQLite file
// the app has always shipped with; Postgres is available for multi-instance
// deployments via FASHIONSALES_DB_DRIVER=postgres plus a DSN.
type DBConfig struct {
	Driver string `envconfig:"FASHIONSALES_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"FASHIONSALES_DB_DSN" default:"fashion_sales.db"`

	MaxOpenConns    int           `envconfig:"FASHIONSALES_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"FASHIONSALES_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"FASHIONSALES_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FASHIONSALES_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(db.Driver)) {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported db driver %q", db.Driver)
	}
	if strings.TrimSpace(db.DSN) == "" {
		return fmt.Errorf("%s_DB_DSN is required", EnvPrefix)
	}
	return nil
}

// IsSQLite reports whether the embedded store is in use.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(strings.TrimSpace(db.Driver), DriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"FASHIONSALES_REDIS_URL"`
	Address      string        `envconfig:"FASHIONSALES_REDIS_ADDR"`
	Password     string        `envconfig:"FASHIONSALES_REDIS_PASSWORD"`
	DB           int           `envconfig:"FASHIONSALES_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FASHIONSALES_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FASHIONSALES_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FASHIONSALES_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FASHIONSALES_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FASHIONSALES_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"FASHIONSALES_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"FASHIONSALES_JWT_ISSUER" default:"fashion-sales"`
	ExpirationMinutes      int    `envconfig:"FASHIONSALES_JWT_EXPIRATION_MINUTES" default:"1440"`
	RefreshTokenTTLMinutes int    `envconfig:"FASHIONSALES_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"FASHIONSALES_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"FASHIONSALES_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"FASHIONSALES_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"FASHIONSALES_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"FASHIONSALES_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"FASHIONSALES_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginUsernameLimit int           `envconfig:"FASHIONSALES_AUTH_RATE_LIMIT_LOGIN_USERNAME_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"FASHIONSALES_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"FASHIONSALES_AUTO_MIGRATE" default:"false"`
}
