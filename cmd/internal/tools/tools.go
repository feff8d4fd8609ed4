package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/nathanhack/leech/golay/coset"
)

// TableStats is the JSON shape shared by the stats and chart tools.
type TableStats struct {
	TableFile    string
	Checksum     string
	Rows         int
	WeightCounts map[int]int
	WeightMean   float64
	WeightStdDev float64
}

func NewTableStats(tableFile string, t *coset.Table) *TableStats {
	stats := t.WeightStats()
	return &TableStats{
		TableFile:    tableFile,
		Checksum:     t.Checksum(),
		Rows:         t.Len(),
		WeightCounts: t.WeightCounts(),
		WeightMean:   stats.Mean,
		WeightStdDev: math.Sqrt(stats.SampledVariance()),
	}
}

func LoadTable(filepath string) (*coset.Table, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, fmt.Errorf("the TABLE_BIN file must exist")
	}

	return coset.Load(filepath)
}

func LoadStats(filepath string) (*TableStats, error) {
	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %v", filepath, err)
	}

	var stats TableStats
	err = json.Unmarshal(bs, &stats)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %v", filepath, err)
	}
	return &stats, nil
}

func SaveStats(filepath string, stats *TableStats) error {
	bs, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("error serializing stats: %v", err)
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("error while saving stats to %v: %v", filepath, err)
	}
	return nil
}
