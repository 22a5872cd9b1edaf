package main

import (
	"strings"

	"github.com/ansel1/merry"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	cfgLogLevel  = "log.level"
	cfgLogFormat = "log.format"
	cfgCheck     = "check"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "bstctl",
		Short:        "Exercise a binary search tree step by step",
		SilenceUsage: true,
	}
	registerFlags(cmd)
	cmd.AddCommand(newDemoCmd(), newRunCmd())
	return cmd
}

// registerFlags registers the configuration flags with the provided command
// and binds them into viper. Every flag can also be set from the environment,
// e.g. BSTCTL_LOG_LEVEL=debug.
func registerFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String(cfgLogLevel, "info", "Log level (trace, debug, info, warn, error)")
	flags.String(cfgLogFormat, "text", "Log format (text or json)")
	flags.Bool(cfgCheck, true, "Validate the tree after every step")

	for _, v := range []string{cfgLogLevel, cfgLogFormat, cfgCheck} {
		viper.BindPFlag(v, flags.Lookup(v)) // nolint: errcheck
	}
	viper.SetEnvPrefix("bstctl")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// newLogger builds a logger from the current configuration, writing to the
// command's error stream.
func newLogger(cmd *cobra.Command) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())

	level, err := logrus.ParseLevel(viper.GetString(cfgLogLevel))
	if err != nil {
		return nil, merry.Wrap(err).WithValue(cfgLogLevel, viper.GetString(cfgLogLevel))
	}
	log.SetLevel(level)

	switch format := viper.GetString(cfgLogFormat); format {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, merry.Errorf("unknown log format %q", format)
	}
	return log, nil
}
