package stats

import (
	"fmt"

	"github.com/nathanhack/leech/cmd/internal/tools"
	"github.com/spf13/cobra"
)

var StatsRun = func(cmd *cobra.Command, args []string) {
	t, err := tools.LoadTable(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	stats := tools.NewTableStats(args[0], t)
	err = tools.SaveStats(args[1], stats)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("rows:%v mean weight:%0.02f(+/-%0.02f) md5:%v\n", stats.Rows, stats.WeightMean, stats.WeightStdDev, stats.Checksum)
}
