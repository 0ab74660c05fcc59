package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"motif_mark_go/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of motif_mark and each of its components",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "Motif Mark - Version Information")
		fmt.Fprintf(w, "\tMotif Mark:\t\t%s\n", config.Main_version)
		fmt.Fprintf(w, "\nComponents:\n")
		fmt.Fprintf(w, "\tMotif Expander:\t\t%s\n", config.Motif)
		fmt.Fprintf(w, "\tDiagram:\t\t%s\n", config.Diagram)
		fmt.Fprintf(w, "\tSequence Stats:\t\t%s\n", config.Seq_stats)
		fmt.Fprintf(w, "\tBenchmark:\t\t%s\n", config.Benchmark)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
