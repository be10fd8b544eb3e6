package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	OTP      OTPConfig
	Logger   LoggerConfig
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
	ProducerAddress string
}

// JWTConfig contains token signing configuration.
// Access and refresh tokens are signed with distinct secrets so a refresh
// token can never be presented as an access token.
type JWTConfig struct {
	AccessSecret      string
	RefreshSecret     string
	Issuer            string
	AccessExpiration  int // in minutes
	RefreshExpiration int // in hours
}

// OTPConfig contains one-time code configuration
type OTPConfig struct {
	TTL   int    // in seconds
	Topic string // NSQ topic for out-of-band delivery
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level string
}
