// Package cmd implements the goai command line interface.
//
// Every flag may also be set in a YAML config file passed with
// --config, under a section named after the command, or through an
// environment variable such as GOAI_VALUEITERATION_DISCOUNT. Flags take
// precedence over the environment, which takes precedence over the
// config file.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EnvPrefix is the prefix of environment variables read by goai
const EnvPrefix = "GOAI"

// app holds the state shared by all commands of one invocation
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

// Execute runs the goai command line interface
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{v: newViper(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "goai",
		Short: "Classic search, planning and classification algorithms",
		Long: "goai runs graph search on mazes, value iteration on " +
			"gridworlds and online classifiers on generated data.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().String("config", "", "YAML config file")
	root.PersistentFlags().BoolP("verbose", "v", false,
		"log progress at debug level")
	a.bind(root.PersistentFlags(), "", "config", "verbose")

	root.AddCommand(
		newSearchCmd(a),
		newValueIterationCmd(a),
		newMiraCmd(a),
		newPerceptronCmd(a),
	)
	return root
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// setup reads the config file, if any, and builds the logger
func (a *app) setup() error {
	if file := a.v.GetString("config"); file != "" {
		a.v.SetConfigFile(file)
		a.v.SetConfigType("yaml")
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("could not read config file %s: %w", file, err)
		}
	}

	var (
		logger *zap.Logger
		err    error
	)
	if a.v.GetBool("verbose") {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("could not create logger: %w", err)
	}
	a.logger = logger
	return nil
}

// bind binds each named flag to the config key section.name
func (a *app) bind(flags *pflag.FlagSet, section string, names ...string) {
	for _, name := range names {
		key := name
		if section != "" {
			key = section + "." + name
		}
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind: flag %q: %v", name, err))
		}
	}
}

// unmarshal decodes every setting into out, which holds one field
// per command section
func (a *app) unmarshal(out any) error {
	if err := a.v.Unmarshal(out); err != nil {
		return fmt.Errorf("could not decode settings: %w", err)
	}
	return nil
}
