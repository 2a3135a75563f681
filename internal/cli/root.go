// Package cli wires the columnsolver command tree.
package cli

import (
	"github.com/spf13/cobra"

	"ColumnSolver/internal/shell"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "columnsolver",
	Short: "Buckling loads for straight, crooked and eccentric columns",
	Long: `Computes critical and allowable buckling loads for circular and
rectangular columns with the Euler and Johnson formulas.

Run without arguments for the interactive menu, or use a subcommand
to evaluate columns from flags or batch files.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return shell.New(cmd.InOrStdin(), cmd.OutOrStdout()).Run()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
