package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bookapi/config"
)

// NewRootCommand builds the command that runs the API server
func NewRootCommand(v *viper.Viper) *cobra.Command {
	command := &cobra.Command{
		Use:           config.AppName,
		Short:         "In-memory book library HTTP API",
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			return runApp(createApp(cfg))
		},
	}

	flags := command.Flags()
	flags.Int("port", config.DefaultPort, "port to listen on")
	flags.String("log-level", config.DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	flags.String("log-format", config.DefaultLogFormat, "log format (console, json)")

	_ = v.BindPFlag(config.EnvPort, flags.Lookup("port"))
	_ = v.BindPFlag(config.EnvLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(config.EnvLogFormat, flags.Lookup("log-format"))

	return command
}

// Execute runs the root command against the process arguments
func Execute() error {
	if err := NewRootCommand(config.NewViper()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	return nil
}
