package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/schedsim/schedsim/sim"
)

// Runtime config keys, as they appear in schedsim.yaml.
const (
	keyPort    = "server.port"
	keyQuantum = "scheduler.round_robin.quantum"
	keyLog     = "log"
)

const (
	defaultPort     = 9095
	defaultLogLevel = "error"
)

// Config is the resolved runtime configuration for one command invocation.
type Config struct {
	Port     int
	Quantum  int64
	LogLevel string
}

// flagKeys maps CLI flag names to the config keys they override.
var flagKeys = map[string]string{
	"port":    keyPort,
	"quantum": keyQuantum,
	"log":     keyLog,
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyPort, defaultPort)
	v.SetDefault(keyQuantum, sim.DefaultQuantum)
	v.SetDefault(keyLog, defaultLogLevel)
	return v
}

// LoadConfig resolves the configuration for cmd. Precedence: flags set on the
// command line, then the config file, then built-in defaults.
// With an empty path, ./schedsim.yaml is read if it exists; an explicit path must exist.
func LoadConfig(cmd *cobra.Command, path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("schedsim")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	for name, key := range flagKeys {
		f := lookupFlag(cmd, name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}

	cfg := &Config{
		Port:     v.GetInt(keyPort),
		Quantum:  v.GetInt64(keyQuantum),
		LogLevel: v.GetString(keyLog),
	}
	if cfg.Quantum < 1 {
		return nil, fmt.Errorf("%s: %w: %d", keyQuantum, sim.ErrInvalidQuantum, cfg.Quantum)
	}
	return cfg, nil
}

// lookupFlag finds name among cmd's local and inherited flags.
func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().Lookup(name)
}
