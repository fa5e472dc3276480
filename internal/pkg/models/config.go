package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	Logger    LoggerConfig
	Functions FunctionsConfig
	Stripe    StripeConfig
	Paystack  PaystackConfig
	Wallet    WalletConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address          string
	TransactionTopic string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// FunctionsConfig contains the serverless function endpoints used for
// gateway initiation calls
type FunctionsConfig struct {
	BaseURL    string
	ServiceKey string
	Timeout    int // in seconds
}

// StripeConfig contains Stripe gateway configuration
type StripeConfig struct {
	PublishableKey string
}

// PaystackConfig contains Paystack gateway configuration
type PaystackConfig struct {
	Currency string // settlement currency required by the aggregator
}

// WalletConfig contains wallet points configuration
type WalletConfig struct {
	PointsPerUSD    float64 `json:"points_per_usd"` // fallback when no settings row exists
	RateCacheTTL    int     `json:"rate_cache_ttl"` // exchange rate cache TTL in seconds
	DefaultCurrency string  `json:"default_currency"`
}
