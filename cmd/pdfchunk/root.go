package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/newjordan/pdfchunk/internal/config"
	"github.com/newjordan/pdfchunk/internal/plan"
	"github.com/newjordan/pdfchunk/internal/splitter"
	"github.com/newjordan/pdfchunk/version"
)

var (
	cfgFile string
	mode    string
	outDir  string
	size    int
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "pdfchunk <input.pdf>",
	Short: "Split PDFs into chapters detected from the table of contents",
	Long: `pdfchunk splits a PDF into smaller documents along chapter boundaries,
detected heuristically from a table-of-contents page. When no usable table
of contents is found, it falls back to fixed-size page chunks.

Each output document carries a bookmark for its chapter and descriptive
metadata, and is written to a subfolder next to the input (or under --output).`,
	Example: `  pdfchunk book.pdf                        # split by chapters (default)
  pdfchunk book.pdf --mode pages           # split into 99-page chunks
  pdfchunk book.pdf --mode pages --size 50 # split into 50-page chunks
  pdfchunk book.pdf --output ./chunks      # custom base output directory
  pdfchunk book.pdf --quiet                # only the final summary and errors`,
	Args:          cobra.ExactArgs(1),
	Version:       version.GitRelease,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSplit,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.pdfchunk/config.yaml)",
	)
	rootCmd.Flags().StringVar(&mode, "mode", "chapters", "chunking mode: chapters or pages")
	rootCmd.Flags().StringVarP(&outDir, "output", "o", "", "base output directory (default: next to the input file)")
	rootCmd.Flags().IntVarP(&size, "size", "s", plan.DefaultChunkSize, "pages per chunk (pages mode only)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")

	rootCmd.SetVersionTemplate(fmt.Sprintf("pdfchunk %s\n", version.GitRelease))

	rootCmd.AddCommand(versionCmd, configCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	chunkSize := cfg.ChunkSize
	if cmd.Flags().Changed("size") {
		chunkSize = size
	}
	if chunkSize < 1 {
		return fmt.Errorf("chunk size must be at least 1, got %d", chunkSize)
	}

	level := slog.LevelInfo
	if quiet {
		level = slog.LevelWarn
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	s := splitter.New(splitter.Options{
		OutputDir:      outDir,
		ChunkSize:      chunkSize,
		ScanPages:      cfg.TOCScanPages,
		TitleMaxLength: cfg.TitleMaxLength,
		Logger:         log,
	})

	var res *splitter.Result
	switch mode {
	case "chapters":
		res, err = s.SplitByChapters(args[0])
	case "pages":
		res, err = s.SplitByPages(args[0])
	default:
		return fmt.Errorf("invalid mode %q: must be chapters or pages", mode)
	}
	if err != nil {
		return err
	}

	if res.Skipped > 0 {
		fmt.Fprintln(os.Stderr, errorStyle.Render(
			fmt.Sprintf("✗ %d chunk(s) could not be written", res.Skipped)))
	}
	fmt.Println(successStyle.Render(
		fmt.Sprintf("✓ Split into %d chunks in %s", len(res.Created), res.OutputDir)))
	return nil
}
