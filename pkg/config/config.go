package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Handoff HandoffConfig
	CORS    CORSConfig
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
	Env          string `envconfig:"BYOM_APP_ENV" required:"true"`
	Port         string `envconfig:"BYOM_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BYOM_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BYOM_LOG_WARN_STACK" default:"false"`
	AutoMigrate  bool   `envconfig:"BYOM_AUTO_MIGRATE" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"BYOM_DB_DSN"`
	Driver string `envconfig:"BYOM_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"BYOM_DB_HOST"`
	LegacyPort     int    `envconfig:"BYOM_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"BYOM_DB_USER"`
	LegacyPassword string `envconfig:"BYOM_DB_PASSWORD"`
	LegacyName     string `envconfig:"BYOM_DB_NAME"`
	LegacySSLMode  string `envconfig:"BYOM_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BYOM_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BYOM_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BYOM_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BYOM_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"BYOM_REDIS_URL" required:"true"`
	Address      string        `envconfig:"BYOM_REDIS_ADDR"`
	Password     string        `envconfig:"BYOM_REDIS_PASSWORD"`
	DB           int           `envconfig:"BYOM_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BYOM_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BYOM_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BYOM_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BYOM_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BYOM_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret string `envconfig:"BYOM_JWT_SECRET" required:"true"`
	Issuer string `envconfig:"BYOM_JWT_ISSUER" required:"true"`
}

// HandoffConfig governs the customize -> preview transient store.
type HandoffConfig struct {
	TTL time.Duration `envconfig:"BYOM_HANDOFF_TTL" default:"30m"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"BYOM_CORS_ALLOWED_ORIGINS"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
