package logicpaper

import (
	"os"
	"sync"
)

// Config holds the process-wide defaults for the formatting core.
type Config struct {
	// LogLevel controls logger verbosity (debug, info, warn, error, off).
	LogLevel string
	// Locale is the default locale for locale-parameterized strategies.
	Locale string
	// DefaultCurrency is the ISO code used when a currency op names none.
	DefaultCurrency string
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:        "info",
		Locale:          "pt_BR",
		DefaultCurrency: "BRL",
	}
}

// ConfigFromEnvironment builds a configuration from environment variables,
// falling back to DefaultConfig for anything unset.
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	if val := os.Getenv("LOGICPAPER_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}
	if val := os.Getenv("LOGICPAPER_LOCALE"); val != "" {
		config.Locale = val
	}
	if val := os.Getenv("LOGICPAPER_CURRENCY"); val != "" {
		config.DefaultCurrency = val
	}

	return config
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

// GetGlobalConfig returns the process-wide configuration.
func GetGlobalConfig() *Config {
	configOnce.Do(func() {
		globalConfigMutex.Lock()
		globalConfig = ConfigFromEnvironment()
		globalConfigMutex.Unlock()
	})

	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()
	return globalConfig
}

// SetGlobalConfig replaces the process-wide configuration.
func SetGlobalConfig(config *Config) {
	if config == nil {
		config = DefaultConfig()
	}
	configOnce.Do(func() {})
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()
}
