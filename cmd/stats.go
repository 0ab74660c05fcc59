package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"motif_mark_go/seqstat"
	common "motif_mark_go/utils"
)

var (
	statsPath string
	statsRNA  bool
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print length, GC content and base validity of each record",
	Long: `Print length, GC content and base validity of each record

FASTA input (.fa, .fasta, .fna, optionally gzipped) reports per record the
length, GC fraction and whether it holds only A, C, G and T (U with --rna).
FASTQ input (.fq, .fastq) reports per read the length and mean phred+33 quality.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, func() error {
			return statsExec(cmd.OutOrStdout())
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsPath, "fasta", "f", "", "path to a FASTA or FASTQ file")
	statsCmd.Flags().BoolVar(&statsRNA, "rna", false, "validate against A, C, G, U")
	statsCmd.MarkFlagRequired("fasta")
}

func statsExec(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if isFastq(statsPath) {
		if err := fastqStats(tw); err != nil {
			return err
		}
	} else if err := fastaStats(tw); err != nil {
		return err
	}
	return tw.Flush()
}

func isFastq(path string) bool {
	path = strings.TrimSuffix(strings.ToLower(path), ".gz")
	return strings.HasSuffix(path, ".fq") || strings.HasSuffix(path, ".fastq")
}

func fastaStats(w io.Writer) error {
	fmt.Fprintln(w, "Header\tLength\tGC\tValid")
	return common.StreamFasta(statsPath, func(rec common.Record) error {
		valid := seqstat.ValidateBaseSeq(rec.Sequence, statsRNA)
		gc := "NA"
		if v, err := seqstat.GCContent(rec.Sequence); err == nil {
			gc = fmt.Sprintf("%.4f", v)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%t\n", rec.Header, len(rec.Sequence), gc, valid)
		return nil
	})
}

func fastqStats(w io.Writer) error {
	reads, err := common.ReadFastq(statsPath)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Read\tLength\tMean_Quality")
	for _, r := range reads {
		q, err := seqstat.QualScore(r.Quality)
		if err != nil {
			return fmt.Errorf("read %s: %w", r.Header, err)
		}
		fmt.Fprintf(w, "%s\t%d\t%.2f\n", r.Header, len(r.Sequence), q)
	}
	return nil
}
