// Package cmd provides the root command and CLI setup for mutavec.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"mutavec.dev/pkg/mutavec/internal/adapter"
	"mutavec.dev/pkg/mutavec/internal/domain"
)

var filler adapter.DefaultFiller
var auditConfig adapter.AuditConfig
var engine domain.Engine

// verboseFlag forces debug-level logging when set.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	filler = adapter.NewSmartFiller()
	auditConfig = adapter.NewViperAuditConfig()
	engine = domain.NewEngine(filler, auditConfig, domain.LogObserver{})
}

const rootLongDescription = `Mutavec generates the mutated input vectors a web-input fuzzer sends:
given a set of named parameters, a target, and a payload, it expands the
payload across every eligible parameter and format combination, optionally
against both transmission methods, deduplicating identical test cases.

It produces test cases only; sending them and judging the responses is the
job of the surrounding scanner.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mutavec",
		Short: "Web input-vector mutation generator",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup("verbose"), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, "log-file", viper.GetString(logFilenameKey), "log file location")
	bindFlagToConfig(cmd.PersistentFlags().Lookup("log-file"), logFilenameKey)

	cmd.PersistentFlags().Bool("both-methods", viper.GetBool(adapter.FuzzBothMethodsKey), "run mutations against both transmission methods unless a command says otherwise")
	bindFlagToConfig(cmd.PersistentFlags().Lookup("both-methods"), adapter.FuzzBothMethodsKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
