package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	batch "ColumnSolver/internal/calc/batch"
	importer "ColumnSolver/internal/calc/importer"
	report "ColumnSolver/internal/calc/report"
)

var (
	batchXLSX string
	batchPDF  string
	batchJSON bool
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Evaluate every column in a YAML or Excel file",
	Long: `Evaluates every column listed in FILE. Files ending in .xlsx are read
as a worksheet with one column per input field; anything else is read
as YAML with an "items" list.

The command fails when any item fails, after reporting all of them.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchXLSX, "xlsx", "", "write results to this Excel workbook")
	batchCmd.Flags().StringVar(&batchPDF, "pdf", "", "write a PDF report of the successful items")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "print results as JSON")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	in, err := readBatch(cmd, args[0])
	if err != nil {
		return err
	}
	res, err := batch.Calculate(in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if batchJSON {
		if err := writeJSON(out, res); err != nil {
			return err
		}
	} else {
		for _, item := range res.Results {
			fmt.Fprintf(out, "#%d %s\n", item.Index+1, item.Label)
			if item.Err != nil {
				fmt.Fprintf(out, "error: %v\n\n", item.Err)
				continue
			}
			if err := report.WriteText(out, *item.Evaluation); err != nil {
				return err
			}
			fmt.Fprintln(out)
		}
	}

	if batchXLSX != "" {
		f, err := os.Create(batchXLSX)
		if err != nil {
			return fmt.Errorf("create workbook: %w", err)
		}
		if err := importer.WriteXLSX(f, res); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	if batchPDF != "" {
		if err := writePDFFile(batchPDF, res.Evaluations()); err != nil {
			return err
		}
	}

	if res.Failed > 0 {
		return fmt.Errorf("%d of %d items failed", res.Failed, len(res.Results))
	}
	return nil
}

func readBatch(cmd *cobra.Command, path string) (batch.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return batch.Input{}, err
	}
	defer f.Close()

	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return importer.ReadYAML(f)
	}
	in, rejected, err := importer.ReadXLSX(f)
	if err != nil {
		return batch.Input{}, err
	}
	for _, re := range rejected {
		cmd.PrintErrf("skipped %v\n", re)
	}
	if len(in.Items) == 0 {
		return batch.Input{}, batch.ErrEmpty
	}
	return in, nil
}
