package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Services ServicesConfig
	Match    MatchConfig
	Fare     FareConfig
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

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// ServicesConfig contains URLs for peer services
type ServicesConfig struct {
	DriverServiceURL  string
	MatchServiceURL   string
	TripServiceURL    string
	RiderServiceURL   string
	StationServiceURL string
}

// MatchConfig contains matching and dispatch tunables
type MatchConfig struct {
	// LooseDestination keeps the case-insensitive containment policy for
	// destination compatibility. Exact (case-insensitive) match when false.
	LooseDestination  bool
	SweepIntervalSec  int
	AcceptDeadlineSec int
}

// FareConfig contains the coarse distance-based fare parameters
type FareConfig struct {
	RatePerDegree int
	MinimumFare   int
	DefaultFare   int
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
