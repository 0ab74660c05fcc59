package cmd

import (
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"motif_mark_go/diagram"
	"motif_mark_go/layout"
	"motif_mark_go/motif"
	"motif_mark_go/motif_mark"
	"motif_mark_go/report"
	common "motif_mark_go/utils"
)

var (
	fastaPath   string
	motifPath   string
	outPrefix   string
	showSummary bool
	sortBy      string
)

// drawCmd represents the draw command
var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw exons and motif hits of every gene in a FASTA file",
	Long: `Draw exons and motif hits of every gene in a FASTA file

Each record becomes one horizontal line, scaled to its length and labeled with
its header. Uppercase runs in the sequence are drawn as dark grey exons. Every
occurrence of every motif, including overlapping ones, is drawn in the motif's
color: uppercase motifs in the exon band, lowercase motifs in the shorter
intron band. A hit sharing a boundary with a span already drawn on the row is
nudged down so both stay visible. A legend lists each motif below the genes.

Motifs may use IUPAC ambiguity codes (Y, M, K, W, S, R, B, D, H, V, N, U).
At most 14 distinct motifs fit in one diagram.

Output is written next to the FASTA file as <name>.pdf and <name>.png unless
--out is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, func() error {
			return drawExec(cmd.OutOrStdout())
		})
	},
}

func init() {
	rootCmd.AddCommand(drawCmd)

	drawCmd.Flags().StringVarP(&fastaPath, "fasta", "f", "", "path to a FASTA file of genes, exons in uppercase")
	drawCmd.Flags().StringVarP(&motifPath, "motif", "m", "", "path to a motif file, one motif per line")
	drawCmd.Flags().StringVarP(&outPrefix, "out", "o", "", "output path without extension (default: FASTA path up to its first '.')")
	drawCmd.Flags().BoolVar(&showSummary, "summary", false, "print motif hit counts per gene")
	drawCmd.Flags().StringVar(&sortBy, "sort", "alpha", "summary order, 'alpha' or 'freq'")
	drawCmd.Flags().Bool("strict", false, "fail on sequences with bases other than A, C, G, T")
	drawCmd.Flags().StringSlice("formats", nil, "output formats: pdf, png, svg")

	// Mark required flags
	drawCmd.MarkFlagRequired("fasta")
	drawCmd.MarkFlagRequired("motif")

	// Bind the paramters to viper
	viper.BindPFlag("strict", drawCmd.Flags().Lookup("strict"))
	viper.BindPFlag("output.formats", drawCmd.Flags().Lookup("formats"))
}

func drawExec(w io.Writer) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	records, err := common.ReadFasta(fastaPath)
	if err != nil {
		return err
	}
	literals, err := common.ReadMotifs(motifPath)
	if err != nil {
		return err
	}
	log.Printf("read %d genes and %d motifs", len(records), len(literals))

	scale := layout.Scale{Margin: settings.Layout.Margin, PerBase: settings.Layout.PerBase}
	opts := motif_mark.OptionsFrom(settings)

	// Colors follow the palette order, the same one the renderer hands out.
	registry, err := motif.Load(literals, diagram.NewPalette())
	if err != nil {
		return err
	}

	width, height := motif_mark.PageSize(records, registry.Len(), scale, opts, diagram.DefaultStyle)
	if settings.Output.Width > 0 {
		width = settings.Output.Width
	}
	if settings.Output.Height > 0 {
		height = settings.Output.Height
	}

	canvas, err := diagram.NewPlotCanvas(width, height, settings.Output.DPI, settings.Output.Formats)
	if err != nil {
		return err
	}
	renderer := diagram.NewRenderer(canvas, scale, diagram.DefaultStyle)

	summary, err := motif_mark.Run(records, registry, renderer, opts)
	if err != nil {
		return err
	}

	prefix := outPrefix
	if prefix == "" {
		prefix = outputPrefix(fastaPath)
	}
	paths, err := canvas.Save(prefix)
	if err != nil {
		return err
	}
	log.Printf("wrote %s (%d hits)", strings.Join(paths, ", "), summary.Total())

	if showSummary {
		return report.Print(w, summary, sortBy, true)
	}
	return nil
}

// outputPrefix drops everything from the first '.' of the file name, so
// genes.fa.gz becomes genes in the same directory.
func outputPrefix(path string) string {
	dir, base := filepath.Split(path)
	if i := strings.Index(base, "."); i > 0 {
		base = base[:i]
	}
	return filepath.Join(dir, base)
}
