package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv    = "EMB_APP_ENV"
	EnvJWTSecret = "EMB_JWT_SECRET"
	EnvDBHost    = "EMB_DB_HOST"
	EnvDBDSN     = "EMB_DB_DSN"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Auth    AuthConfig
	Mail    MailConfig
	Storage StorageConfig
	Redis   RedisConfig
	Jobs    JobsConfig
}

type AppConfig struct {
	Env          string `envconfig:"EMB_APP_ENV" default:"development"`
	Port         string `envconfig:"EMB_HTTP_PORT" default:"8080"`
	LogLevel     string `envconfig:"EMB_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"EMB_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"EMB_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

type DBConfig struct {
	DSN      string `envconfig:"EMB_DB_DSN"`
	Host     string `envconfig:"EMB_DB_HOST"`
	Port     int    `envconfig:"EMB_DB_PORT" default:"5432"`
	User     string `envconfig:"EMB_DB_USER"`
	Password string `envconfig:"EMB_DB_PASSWORD"`
	Name     string `envconfig:"EMB_DB_NAME"`
	SSLMode  string `envconfig:"EMB_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"EMB_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"EMB_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"EMB_DB_CONN_MAX_LIFETIME" default:"1h"`
	AutoMigrate     bool          `envconfig:"EMB_DB_AUTO_MIGRATE" default:"false"`
}

type AuthConfig struct {
	JWTSecret     string        `envconfig:"EMB_JWT_SECRET" required:"true"`
	JWTIssuer     string        `envconfig:"EMB_JWT_ISSUER" default:"embroidery"`
	TokenTTL      time.Duration `envconfig:"EMB_JWT_TTL" default:"24h"`
	AdminOrigin   string        `envconfig:"EMB_ADMIN_ORIGIN"`
	WorkerOrigin  string        `envconfig:"EMB_WORKER_ORIGIN"`
	EnforcePortal bool          `envconfig:"EMB_ENFORCE_PORTAL" default:"false"`
	BcryptCost    int           `envconfig:"EMB_BCRYPT_COST" default:"10"`
}

type MailConfig struct {
	APIKey       string        `envconfig:"EMB_BREVO_API_KEY"`
	APIURL       string        `envconfig:"EMB_BREVO_API_URL" default:"https://api.brevo.com/v3/smtp/email"`
	FromName     string        `envconfig:"EMB_MAIL_FROM_NAME" default:"Embroidery"`
	FromAddress  string        `envconfig:"EMB_MAIL_FROM_ADDRESS"`
	Timeout      time.Duration `envconfig:"EMB_MAIL_TIMEOUT" default:"10s"`
	ResetURLBase string        `envconfig:"EMB_RESET_URL" default:"http://localhost:3000/reset-password"`
}

type StorageConfig struct {
	ImageDir    string `envconfig:"EMB_IMAGE_DIR" default:"uploads"`
	ImagePrefix string `envconfig:"EMB_IMAGE_PREFIX" default:"/images"`
}

type RedisConfig struct {
	URL            string        `envconfig:"EMB_REDIS_URL"`
	Address        string        `envconfig:"EMB_REDIS_ADDR" default:"localhost:6379"`
	Password       string        `envconfig:"EMB_REDIS_PASSWORD"`
	DB             int           `envconfig:"EMB_REDIS_DB" default:"0"`
	PoolSize       int           `envconfig:"EMB_REDIS_POOL_SIZE" default:"10"`
	IdempotencyTTL time.Duration `envconfig:"EMB_IDEMPOTENCY_TTL" default:"24h"`
}

type JobsConfig struct {
	ResetTokenCleanup string `envconfig:"EMB_JOB_RESET_TOKEN_CLEANUP" default:"@every 15m"`
	LedgerAudit       string `envconfig:"EMB_JOB_LEDGER_AUDIT" default:"@hourly"`
}

// LoadConfig reads an optional .env file and then the environment. Values
// already present in the environment win over the file.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the postgres connection string, either given or built from parts.
func (c Config) DSN() string {
	return c.DB.DSN
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	var missing []string
	for _, part := range [][2]string{{EnvDBHost, db.Host}, {"EMB_DB_USER", db.User}, {"EMB_DB_NAME", db.Name}} {
		if part[1] == "" {
			missing = append(missing, part[0])
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
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
