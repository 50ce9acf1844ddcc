package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hailam/randfile/internal/optname"
)

const (
	EnvPrefix       = "RANDFILE"
	DefaultSize     = "4kb"
	DefaultLogLevel = "warn"
)

// Options is the resolved configuration for one run.
type Options struct {
	Name    string
	Size    string
	Seed    uint64
	Spinner bool
}

func AddRootFlags(cmd *cobra.Command) error {
	cmd.Flags().StringP(optname.Name, "n", "", "Output file name (default: random 10-character name)")
	cmd.Flags().StringP(optname.Size, "k", DefaultSize, "Target size, e.g. 4kb, 50mb, 1 GB")
	cmd.Flags().Uint64(optname.Seed, 0, "Random seed; 0 derives one from the clock")
	cmd.Flags().Bool(optname.Spinner, false, "Show a spinner on stderr instead of progress lines")
	cmd.Flags().BoolP(optname.Verbose, "v", false, "Verbose mode (equivalent to --log-level debug)")
	cmd.Flags().String(optname.LoggingLevel, DefaultLogLevel, "Log level (debug, info, warn, error)")

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	return nil
}

// Load reads the bound flags and environment into Options.
func Load() Options {
	return Options{
		Name:    viper.GetString(optname.Name),
		Size:    viper.GetString(optname.Size),
		Seed:    viper.GetUint64(optname.Seed),
		Spinner: viper.GetBool(optname.Spinner),
	}
}

func PersistentStartupProcessFlags() error {
	if viper.GetBool(optname.Verbose) {
		viper.Set(optname.LoggingLevel, "debug")
	}
	setLogLevel(viper.GetString(optname.LoggingLevel))
	return nil
}

func setLogLevel(logLevel string) {
	switch logLevel {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
