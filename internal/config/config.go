package config

import (
	"fmt"
	"strings"

	"github.com/KostasZigo/casgit/internal/constants"
	"github.com/klauspost/compress/zlib"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings shared by every command.
type Config struct {
	// RepoPath is the repository root. Empty means discover it from the working directory.
	RepoPath string

	// Verbose enables debug logging.
	Verbose bool

	// CompressionLevel is the zlib level used when writing objects.
	CompressionLevel int
}

// New creates a viper instance reading CASGIT_* environment variables,
// bound to flags when they are given.
func New(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(constants.RepoKey, "")
	v.SetDefault(constants.VerboseKey, false)
	v.SetDefault(constants.CompressionLevelKey, zlib.DefaultCompression)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	return v, nil
}

// Load reads and validates the configuration.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		RepoPath:         v.GetString(constants.RepoKey),
		Verbose:          v.GetBool(constants.VerboseKey),
		CompressionLevel: v.GetInt(constants.CompressionLevelKey),
	}

	if cfg.CompressionLevel < zlib.HuffmanOnly || cfg.CompressionLevel > zlib.BestCompression {
		return nil, fmt.Errorf("invalid %s %d: must be between %d and %d",
			constants.CompressionLevelKey, cfg.CompressionLevel, zlib.HuffmanOnly, zlib.BestCompression)
	}

	return cfg, nil
}
