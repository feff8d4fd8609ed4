package cmd

import (
	"github.com/nathanhack/leech/cmd/internal/tools/chart"
	"github.com/nathanhack/leech/cmd/internal/tools/stats"
	"github.com/nathanhack/leech/cmd/internal/tools/verify"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for table artifacts",
	Long:    `Tools for coset-leader table artifacts`,
}

// toolsVerifyCmd represents the verify command
var toolsVerifyCmd = &cobra.Command{
	Use:     "verify TABLE_BIN",
	Aliases: []string{"v"},
	Short:   "Verifies a coset-leader table artifact",
	Long:    `Verifies a coset-leader table artifact: exactly 4096 rows, each row mapping back to its own syndrome within the covering radius.`,
	Args:    cobra.ExactArgs(1),
	Run:     verify.VerifyRun,
}

// toolsStatsCmd represents the stats command
var toolsStatsCmd = &cobra.Command{
	Use:     "stats TABLE_BIN RESULT_JSON",
	Aliases: []string{"s"},
	Short:   "Summarizes a coset-leader table artifact",
	Long:    `Summarizes a coset-leader table artifact into a RESULT_JSON for graphing and comparison.`,
	Args:    cobra.ExactArgs(2),
	Run:     stats.StatsRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:     "chart RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"c"},
	Short:   "Charts leader weight distributions",
	Long:    `Charts leader weight distributions from one or more RESULTS_JSON files`,
	Run:     chart.ChartRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)

	toolsCmd.AddCommand(toolsVerifyCmd)
	toolsVerifyCmd.Flags().UintVar(&verify.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
	toolsVerifyCmd.Flags().BoolVarP(&verify.Rebuild, "rebuild", "r", false, "also rebuild the table and require byte-identical output")
	toolsVerifyCmd.Flags().BoolVarP(&verify.Verbose, "verbose", "v", false, "enable verbose info")

	toolsCmd.AddCommand(toolsStatsCmd)

	toolsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "weights.html", "filename of the chart html")
}
