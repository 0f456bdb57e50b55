package cmd

import (
	"fmt"
	"net/url"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
	Jobs  JobsConfig
}

type AppConfig struct {
	HTTPPort        string        `envconfig:"HTTP_PORT" default:"8080"`
	ServiceName     string        `envconfig:"SERVICE_NAME" default:"dispatch"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"json"`
	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE" default:"false"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
	// BOLTimeZone is the IANA zone whose calendar month prefixes bill of
	// lading numbers.
	BOLTimeZone string `envconfig:"BOL_TIMEZONE" default:"UTC"`

	bolLocation *time.Location
}

// BOLLocation is the parsed BOLTimeZone, UTC when LoadConfig was bypassed.
func (a AppConfig) BOLLocation() *time.Location {
	if a.bolLocation == nil {
		return time.UTC
	}
	return a.bolLocation
}

// DBConfig accepts either a full DSN or the individual DB_* parts.
type DBConfig struct {
	DSN      string `envconfig:"DB_DSN"`
	Host     string `envconfig:"DB_HOST"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	Name     string `envconfig:"DB_NAME"`
	SslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// RedisConfig is optional. Without a URL or address the audit jobs run
// without a lease.
type RedisConfig struct {
	URL      string `envconfig:"REDIS_URL"`
	Address  string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	PoolSize int    `envconfig:"REDIS_POOL_SIZE" default:"10"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER" default:"dispatch"`
}

type JobsConfig struct {
	Enabled          bool          `envconfig:"JOBS_ENABLED" default:"true"`
	StopSequenceSpec string        `envconfig:"JOBS_STOP_SEQUENCE_SPEC" default:"0 */5 * * * *"`
	OrderDriftSpec   string        `envconfig:"JOBS_ORDER_DRIFT_SPEC" default:"30 */5 * * * *"`
	LeaseTTL         time.Duration `envconfig:"JOBS_LEASE_TTL" default:"4m"`
	Timeout          time.Duration `envconfig:"JOBS_TIMEOUT" default:"1m"`
}

// LoadConfig reads the process environment. Variables are not prefixed.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return Config{}, err
	}
	loc, err := time.LoadLocation(cfg.App.BOLTimeZone)
	if err != nil {
		return Config{}, fmt.Errorf("BOL_TIMEZONE: %w", err)
	}
	cfg.App.bolLocation = loc
	return cfg, nil
}

func (c RedisConfig) Enabled() bool {
	return c.URL != "" || c.Address != ""
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.Host == "" || db.User == "" || db.Name == "" {
		return fmt.Errorf("either DB_DSN or DB_HOST, DB_USER and DB_NAME are required")
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     db.Host + ":" + db.Port,
		Path:     db.Name,
		RawQuery: url.Values{"sslmode": []string{db.SslMode}}.Encode(),
	}
	db.DSN = dsn.String()
	return nil
}
