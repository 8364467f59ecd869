package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every GymGrid environment variable.
const EnvPrefix = "GYMGRID"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	SMTP          SMTPConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GYMGRID_APP_ENV" required:"true"`
	Port         string `envconfig:"GYMGRID_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"GYMGRID_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GYMGRID_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"GYMGRID_DB_DSN"`
	Driver string `envconfig:"GYMGRID_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"GYMGRID_DB_HOST"`
	Port     int    `envconfig:"GYMGRID_DB_PORT" default:"5432"`
	User     string `envconfig:"GYMGRID_DB_USER"`
	Password string `envconfig:"GYMGRID_DB_PASSWORD"`
	Name     string `envconfig:"GYMGRID_DB_NAME"`
	SSLMode  string `envconfig:"GYMGRID_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"GYMGRID_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GYMGRID_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GYMGRID_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GYMGRID_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"GYMGRID_REDIS_URL"`
	Address      string        `envconfig:"GYMGRID_REDIS_ADDR"`
	Password     string        `envconfig:"GYMGRID_REDIS_PASSWORD"`
	DB           int           `envconfig:"GYMGRID_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GYMGRID_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GYMGRID_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GYMGRID_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GYMGRID_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GYMGRID_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret             string `envconfig:"GYMGRID_JWT_SECRET" required:"true"`
	Issuer             string `envconfig:"GYMGRID_JWT_ISSUER" default:"gymgrid"`
	ExpirationHours    int    `envconfig:"GYMGRID_JWT_EXPIRATION_HOURS" default:"24"`
	ResetTokenTTLHours int    `envconfig:"GYMGRID_JWT_RESET_TTL_HOURS" default:"1"`
}

// AccessTokenTTL returns the access token lifetime.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(j.ExpirationHours) * time.Hour
}

// ResetTokenTTL returns the password-reset token lifetime.
func (j JWTConfig) ResetTokenTTL() time.Duration {
	if j.ResetTokenTTLHours <= 0 {
		return time.Hour
	}
	return time.Duration(j.ResetTokenTTLHours) * time.Hour
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"GYMGRID_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"GYMGRID_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"GYMGRID_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"GYMGRID_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"GYMGRID_ARGON_KEY_LEN" default:"32"`
}

type SMTPConfig struct {
	Host        string `envconfig:"GYMGRID_SMTP_HOST"`
	Port        int    `envconfig:"GYMGRID_SMTP_PORT" default:"587"`
	Username    string `envconfig:"GYMGRID_SMTP_USERNAME"`
	Password    string `envconfig:"GYMGRID_SMTP_PASSWORD"`
	DefaultFrom string `envconfig:"GYMGRID_SMTP_FROM" default:"no-reply@gymgrid.app"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"GYMGRID_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"GYMGRID_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"GYMGRID_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"GYMGRID_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"GYMGRID_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"GYMGRID_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"GYMGRID_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	if db.Host == "" {
		missing = append(missing, "GYMGRID_DB_HOST")
	}
	if db.User == "" {
		missing = append(missing, "GYMGRID_DB_USER")
	}
	if db.Name == "" {
		missing = append(missing, "GYMGRID_DB_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("either GYMGRID_DB_DSN or %s are required", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
