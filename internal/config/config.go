package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Reading ReadingConfig `mapstructure:"reading"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// Add other server settings as needed (e.g., timeouts)
}

// CatalogConfig controls where the card meaning catalog is loaded from.
type CatalogConfig struct {
	// Path points at an external JSON or YAML meanings file.
	// An empty path selects the embedded catalog.
	Path string `mapstructure:"path"`
}

// ReadingConfig contains the knobs of the reading pipeline.
type ReadingConfig struct {
	// ReversalProbability is the chance each drawn card is flipped to
	// reversed. Zero is a legal value (no card is ever reversed).
	ReversalProbability float64 `mapstructure:"reversal_probability" validate:"gte=0,lte=1"`
	// Seed fixes the session's randomness for reproducible readings.
	// Zero selects a time-based seed.
	Seed int64 `mapstructure:"seed"`
}
