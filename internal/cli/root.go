// Package cli implements the taskforge command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	verbose   bool
	quiet     bool
	plain     bool
	noSandbox bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "taskforge",
	Short: "Fail-fast task runner for the contract toolchain",
	Long: `taskforge runs the fixed development pipeline of the contract toolchain:
unit tests, example-contract compilation, scenario generation/execution,
and full evaluation, optionally inside a container sandbox.

Tasks declare prerequisites; taskforge resolves the dependency closure,
runs each task exactly once in dependency order, and stops at the first
failing command.

Quick start:
  taskforge list              Show the task graph
  taskforge plan test         Show what 'test' would run
  taskforge run test          Run the full pipeline`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .taskforge/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "plain output without emoji")
	rootCmd.PersistentFlags().BoolVar(&noSandbox, "no-sandbox", false, "run commands on the host even if the sandbox is enabled")

	// Add subcommands
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".taskforge")
		viper.AddConfigPath("$HOME/.taskforge")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("TASKFORGE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
