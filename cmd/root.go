// file: cmd/root.go
// version: 2.0.1
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdfalk/fuzzymatch/internal/config"
	"github.com/jdfalk/fuzzymatch/internal/metrics"
	"github.com/jdfalk/fuzzymatch/pkg/fuzz"
)

var cfgFile string
var verbose bool
var quiet bool
var metricsFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fuzzymatch",
	Short: "Approximate string matching from the command line",
	Long: `fuzzymatch computes weighted edit distances, edit scripts and
0-100 similarity scores, and ranks or cross-scores lists of strings.

Settings can come from flags, $HOME/.fuzzymatch.yaml or FUZZYMATCH_*
environment variables, in that order of precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(cmd)
		metrics.Register()
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if metricsFile == "" {
			return nil
		}
		if err := prometheus.WriteToTextfile(metricsFile, prometheus.DefaultGatherer); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		log.WithField("path", metricsFile).Debug("metrics written")
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fuzzymatch.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log batch summaries at debug level")
	flags.BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	flags.StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")
	flags.String("scorer", "wratio", "similarity scorer ("+strings.Join(fuzz.Names(), ", ")+")")
	flags.String("processor", "none", "preprocessor applied to every input: none, default or fold")
	flags.Float64("cutoff", -1, "score cutoff; negative disables it")
	flags.Int("limit", 5, "maximum number of matches to print; 0 prints all")
	flags.Int("workers", 1, "goroutines used for batch scoring")
	flags.String("weights", "1,1,1", "insert,delete,substitute costs")
	flags.String("format", "text", "output format: text, yaml or csv")

	viper.BindPFlag("scorer", flags.Lookup("scorer"))
	viper.BindPFlag("processor", flags.Lookup("processor"))
	viper.BindPFlag("score_cutoff", flags.Lookup("cutoff"))
	viper.BindPFlag("limit", flags.Lookup("limit"))
	viper.BindPFlag("workers", flags.Lookup("workers"))
	viper.BindPFlag("weights", flags.Lookup("weights"))
	viper.BindPFlag("format", flags.Lookup("format"))

	rootCmd.AddCommand(distanceCmd)
	rootCmd.AddCommand(editopsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(cdistCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".fuzzymatch")
	}

	viper.SetEnvPrefix("fuzzymatch")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.WithField("path", viper.ConfigFileUsed()).Debug("using config file")
	}

	config.InitConfig()
}

// setupLogging configures logrus from --verbose/--quiet or the log_level setting.
func setupLogging(cmd *cobra.Command) {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	switch {
	case verbose:
		log.SetLevel(log.DebugLevel)
	case quiet:
		log.SetLevel(log.ErrorLevel)
	default:
		level, err := log.ParseLevel(config.AppConfig.LogLevel)
		if err != nil {
			log.WithError(err).Warn("invalid log_level, using warn")
			level = log.WarnLevel
		}
		log.SetLevel(level)
	}
}
