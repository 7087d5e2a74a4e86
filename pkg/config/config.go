package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	AuthRateLimit AuthRateLimitConfig
	Upload        UploadConfig
	Report        ReportConfig
	WhatsApp      WhatsAppConfig
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
	Env          string `envconfig:"MEDIHOUSE_APP_ENV" required:"true"`
	Port         string `envconfig:"MEDIHOUSE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MEDIHOUSE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MEDIHOUSE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MEDIHOUSE_DB_DSN"`
	Driver string `envconfig:"MEDIHOUSE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MEDIHOUSE_DB_HOST"`
	LegacyPort     int    `envconfig:"MEDIHOUSE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MEDIHOUSE_DB_USER"`
	LegacyPassword string `envconfig:"MEDIHOUSE_DB_PASSWORD"`
	LegacyName     string `envconfig:"MEDIHOUSE_DB_NAME"`
	LegacySSLMode  string `envconfig:"MEDIHOUSE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MEDIHOUSE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MEDIHOUSE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MEDIHOUSE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MEDIHOUSE_DB_CONN_MAX_IDLE_TIME" default:"30s"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MEDIHOUSE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MEDIHOUSE_REDIS_ADDR"`
	Password     string        `envconfig:"MEDIHOUSE_REDIS_PASSWORD"`
	DB           int           `envconfig:"MEDIHOUSE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MEDIHOUSE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MEDIHOUSE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MEDIHOUSE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MEDIHOUSE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MEDIHOUSE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"MEDIHOUSE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"MEDIHOUSE_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"MEDIHOUSE_JWT_EXPIRATION_MINUTES" default:"480"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"MEDIHOUSE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"MEDIHOUSE_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"MEDIHOUSE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type UploadConfig struct {
	MaxUploadMB int `envconfig:"MEDIHOUSE_MAX_UPLOAD_MB" default:"10"`
}

type ReportConfig struct {
	Timezone string `envconfig:"MEDIHOUSE_REPORT_TIMEZONE" default:"Asia/Kolkata"`
}

type WhatsAppConfig struct {
	Phone string `envconfig:"MEDIHOUSE_WHATSAPP_PHONE"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"MEDIHOUSE_AUTO_MIGRATE" default:"false"`
}

// CartTTL is how long an idle session cart survives in Redis.
const CartTTL = 30 * 24 * time.Hour

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
