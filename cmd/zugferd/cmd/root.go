package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "1.0.0"

	// Global flags
	verbose bool
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "zugferd",
	Short: "Build ZUGFeRD / Factur-X invoice documents",
	Long: `zugferd builds ZUGFeRD / Factur-X invoice documents from YAML descriptions.

Every value in a description is checked against the selected profile
(MINIMUM, BASIC WL, BASIC, EN16931, EXTENDED, XRECHNUNG). Values the
profile cannot carry are dropped and reported, or rejected with --strict.

Examples:
  # Build a document with the profile named in the description
  zugferd build invoice.yaml

  # Build the same description as MINIMUM and write YAML
  zugferd build invoice.yaml --profile minimum -f yaml -o invoice.min.yaml

  # Show which profiles keep every value of a description
  zugferd check invoice.yaml

  # List the fields a profile supports
  zugferd capabilities en16931`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.zugferd.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// initConfig loads defaults for profile, strict and format from the config
// file and ZUGFERD_* environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".zugferd")
	}

	viper.SetEnvPrefix("ZUGFERD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
