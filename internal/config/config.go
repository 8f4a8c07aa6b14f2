package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// browser, tracking loop, mail delivery and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// Product creation scrapes the page synchronously, so this must leave room
		// for a full browser navigation.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"1m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"pricetracker" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Browser configures the shared headless browser used for scraping
	Browser struct {
		// BinPath points at a browser binary. Empty downloads a managed chromium build
		BinPath string `env:"BROWSER_BIN_PATH" env-default:"" yaml:"binPath"`
		// Headless runs the browser without a visible window
		Headless bool `env:"BROWSER_HEADLESS" env-default:"true" yaml:"headless"`
		// NoSandbox disables the chromium sandbox, required in most containers
		NoSandbox bool `env:"BROWSER_NO_SANDBOX" env-default:"true" yaml:"noSandbox"`
		// NavigationTimeout bounds a single page load
		NavigationTimeout time.Duration `env:"BROWSER_NAVIGATION_TIMEOUT" env-default:"30s" yaml:"navigationTimeout"`
		// QueryTimeout bounds individual DOM selector lookups
		QueryTimeout time.Duration `env:"BROWSER_QUERY_TIMEOUT" env-default:"5s" yaml:"queryTimeout"`
		// IdleSweepInterval is how often the idle browser reaper runs
		IdleSweepInterval time.Duration `env:"BROWSER_IDLE_SWEEP_INTERVAL" env-default:"5m" yaml:"idleSweepInterval"`
	} `yaml:"browser"`

	// Tracker configures the periodic price check loop
	Tracker struct {
		// TickInterval is how often the tracker looks for products to re-check
		TickInterval time.Duration `env:"TRACKER_TICK_INTERVAL" env-default:"1m" yaml:"tickInterval"`
		// StaleAfter is how old a product's last check must be before it is re-checked
		StaleAfter time.Duration `env:"TRACKER_STALE_AFTER" env-default:"7m" yaml:"staleAfter"`
		// JitterMin is the minimum random delay before each concurrent scrape
		JitterMin time.Duration `env:"TRACKER_JITTER_MIN" env-default:"1s" yaml:"jitterMin"`
		// JitterMax is the maximum random delay before each concurrent scrape
		JitterMax time.Duration `env:"TRACKER_JITTER_MAX" env-default:"7s" yaml:"jitterMax"`
		// BatchLimit caps how many stale products one tick picks up. Zero means no cap
		BatchLimit uint `env:"TRACKER_BATCH_LIMIT" env-default:"0" yaml:"batchLimit"`
	} `yaml:"tracker"`

	// SMTP configures outgoing notification mail
	SMTP struct {
		// Host is the SMTP server hostname
		Host string `env:"SMTP_HOST" env-default:"localhost" yaml:"host"`
		// Port is the SMTP server port
		Port int `env:"SMTP_PORT" env-default:"587" yaml:"port"`
		// Username authenticates against the SMTP server. Empty disables AUTH
		Username string `env:"SMTP_USERNAME" env-default:"" yaml:"username"`
		// Password is the credential for Username
		Password string `env:"SMTP_PASSWORD" env-default:"" yaml:"password"`
		// From is the sender address put on outgoing mail
		From string `env:"SMTP_FROM" env-default:"alerts@localhost" yaml:"from"`
	} `yaml:"smtp"`

	// JWT holds the RS256 key pair used to authenticate API requests
	JWT struct {
		// PrivateKey is the PEM encoded RSA private key used by the jwt subcommand
		PrivateKey string `env:"JWT_PRIVATE_KEY" env-default:"" yaml:"privateKey"`
		// PublicKey is the PEM encoded RSA public key used to verify bearer tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" env-default:"" yaml:"publicKey"`
	} `yaml:"jwt"`

	// MaxProductsPerUser caps how many products a single user may track
	MaxProductsPerUser int64 `env:"MAX_PRODUCTS_PER_USER" env-default:"15" yaml:"maxProductsPerUser"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
