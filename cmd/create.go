package cmd

import (
	"github.com/nathanhack/leech/cmd/internal/create/table"

	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "used to create table artifacts",
	Long:    `create provides the ability to build the coset-leader table and save it so it can be used later by the tools and downstream decoders.`,
}

// createTableCmd represents the table command
var createTableCmd = &cobra.Command{
	Use:     "table OUTPUT_TABLE_BIN",
	Aliases: []string{"t"},
	Short:   "Builds the Golay coset-leader table",
	Long:    `Builds the complete 4096 row coset-leader table for the Golay (24,12,8) code and saves it to OUTPUT_TABLE_BIN.`,
	Args:    cobra.ExactArgs(1),
	Run:     table.TableRun,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.AddCommand(createTableCmd)
	createTableCmd.Flags().BoolVarP(&table.Verbose, "verbose", "v", false, "enable verbose info")
	createTableCmd.Flags().BoolVarP(&table.Progress, "progress", "b", true, "show a progress bar while searching")
}
