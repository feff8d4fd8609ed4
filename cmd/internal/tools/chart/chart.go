package chart

import (
	"fmt"
	"os"

	"github.com/nathanhack/leech/cmd/internal/tools"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var OutputFile string

var ChartRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	// loop through all the results files and collect data needed for displaying

	stats := make([]*tools.TableStats, len(args))
	var err error
	weightSet := make(map[int]bool)
	for i, resultFile := range args {
		stats[i], err = tools.LoadStats(resultFile)
		if err != nil {
			fmt.Println(err)
			return
		}
		for w := range stats[i].WeightCounts {
			weightSet[w] = true
		}
	}

	//now make the x axis values

	weights, names := xAxisAndValues(weightSet)

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	// create a new bar instance
	bar := charts.NewBar()
	// set some global options like Title/Legend/ToolTip or anything else
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Coset Leaders",
			Subtitle: "Weight Distribution",
			Left:     "20%",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true,
			Orient: "vertical",
			Right:  "0",
			Top:    "top",
			Type:   "scroll",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Leader Weight",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Cosets",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	bar.SetXAxis(names)

	// Put data into instance
	for i, s := range stats {
		bar.AddSeries(args[i], series(s, weights))
	}

	bar.Render(f)
}

func xAxisAndValues(weightSet map[int]bool) ([]int, []string) {
	nums := make([]int, 0, len(weightSet))
	strs := make([]string, 0, len(weightSet))
	for w := range weightSet {
		nums = append(nums, w)
	}

	slices.Sort(nums)

	for _, n := range nums {
		strs = append(strs, fmt.Sprint(n))
	}

	return nums, strs
}

func series(stat *tools.TableStats, weights []int) []opts.BarData {
	results := make([]opts.BarData, len(weights))
	null := opts.BarData{Value: nil}
	for i, w := range weights {
		count, has := stat.WeightCounts[w]
		if !has {
			results[i] = null
			continue
		}

		results[i] = opts.BarData{
			Value: count,
		}
	}
	return results
}
