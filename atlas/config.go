package atlas

// Config holds atlas configuration.
type Config struct {
	// PageSize is the page texture size (width = height).
	// Must be a power of 2. Default: 1024
	PageSize int

	// Padding between glyphs to prevent bleeding.
	// Default: 1
	Padding int

	// MaxPages is the maximum number of pages.
	// Default: 8
	MaxPages int
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		PageSize: 1024,
		Padding:  1,
		MaxPages: 8,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.PageSize < 64 {
		return &ConfigError{Field: "PageSize", Reason: "must be at least 64"}
	}
	if c.PageSize > 8192 {
		return &ConfigError{Field: "PageSize", Reason: "must be at most 8192"}
	}
	if c.PageSize&(c.PageSize-1) != 0 {
		return &ConfigError{Field: "PageSize", Reason: "must be power of 2"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if c.Padding >= c.PageSize/4 {
		return &ConfigError{Field: "Padding", Reason: "must be less than a quarter of PageSize"}
	}
	if c.MaxPages < 1 {
		return &ConfigError{Field: "MaxPages", Reason: "must be at least 1"}
	}
	if c.MaxPages > 256 {
		return &ConfigError{Field: "MaxPages", Reason: "must be at most 256"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}
