// Package cmd is for command line interactions with the motif_mark application
package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"motif_mark_go/benchmark"
	"motif_mark_go/config"
)

var (
	settingsFile string
	overrides    []string
	benchmarking bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "motif_mark",
	Short: `Draw motif and exon positions along gene sequences.
Exons are read from uppercase runs of a FASTA file, motifs from a text file`,
	Version:      config.Main_version,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "path to a YAML settings file")
	rootCmd.PersistentFlags().StringArrayVar(&overrides, "set", nil, "override one setting as key=value, e.g. layout.per-base=0.5")
	rootCmd.PersistentFlags().BoolVar(&benchmarking, "benchmark", false, "report time and memory used by the command")
}

// loadSettings merges defaults, the settings file, bound flags and --set
// overrides, in increasing precedence.
func loadSettings() (config.Settings, error) {
	v := viper.GetViper()
	config.SetDefaults(v)

	if settingsFile != "" {
		v.SetConfigFile(settingsFile)
		if err := v.ReadInConfig(); err != nil {
			return config.Settings{}, fmt.Errorf("failed to read settings %s: %w", settingsFile, err)
		}
	}

	parsed, err := config.ParseOverrides(overrides)
	if err != nil {
		return config.Settings{}, err
	}
	config.ApplyOverrides(v, parsed)

	return config.Load(v)
}

// runCommand calls body, wrapped in a benchmark report when --benchmark is set.
func runCommand(cmd *cobra.Command, args []string, body func() error) error {
	if !benchmarking {
		return body()
	}
	label := strings.Join(append([]string{cmd.CommandPath()}, args...), " ")
	_, err := benchmark.Run(label, cmd.ErrOrStderr(), body)
	return err
}
