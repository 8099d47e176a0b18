package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries the CLI configuration assembled from flags, environment
// variables, .env files, and an optional config file.
type Config struct {
	// Output behavior
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// ConfigFile records which config file viper ended up using.
	ConfigFile string

	// ProfilePath points at a reconciliation profile to load.
	ProfilePath string

	// Logging. An empty LogLevel means no explicit level was requested,
	// which lets -v and -q take effect.
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig assembles the configuration. Sources, strongest first:
// command-line flags (folded in later via UpdateFromFlags), environment
// variables, .env files, the config file, defaults.
func LoadConfig() (*Config, error) {
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	readConfigFile()

	return &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Format:  viper.GetString("format"),

		ConfigFile: viper.ConfigFileUsed(),

		ProfilePath: viper.GetString("profile"),

		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}, nil
}

// readConfigFile points viper at the configured file, or searches the home
// directory and the working directory for a .remarkup.yaml. A missing file
// is not an error.
func readConfigFile() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".remarkup")
	}
	_ = viper.ReadInConfig()
}

// UpdateFromFlags folds parsed command flags into the config. Flags beat
// environment and config file values, but unset flags leave the loaded
// values alone.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel, profile string) {
	if verbose {
		c.Verbose = true
	}
	if quiet {
		c.Quiet = true
	}
	if noColor {
		c.NoColor = true
	}
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if profile != "" {
		c.ProfilePath = profile
	}
}

// loadEnvFiles pulls optional dotenv files into the environment. godotenv
// never overrides variables that are already set, so the more specific
// .env.local is read first.
func loadEnvFiles() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
