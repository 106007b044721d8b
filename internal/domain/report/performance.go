package report

import (
	"cmp"
	"slices"

	"github.com/okian/workforce-analyzer/internal/domain/model"
	"github.com/okian/workforce-analyzer/internal/domain/types"
)

// Column names of the performance report.
const (
	ColumnPosition    = "position"
	ColumnPerformance = "performance"
)

// Performance averages the performance score per position.
type Performance struct{}

// NewPerformance returns the performance strategy.
func NewPerformance() *Performance { return &Performance{} }

// Name implements Strategy.
func (*Performance) Name() string { return "performance" }

// Generate groups employees by exact position, averages their performance
// and sorts positions by that mean, highest first. Equal means keep the order
// in which the positions first appeared.
func (*Performance) Generate(employees []model.Employee) types.Table {
	type group struct {
		position string
		sum      float64
		count    int
	}

	index := make(map[string]int)
	var groups []group
	for _, e := range employees {
		i, ok := index[e.Position]
		if !ok {
			i = len(groups)
			index[e.Position] = i
			groups = append(groups, group{position: e.Position})
		}
		groups[i].sum += e.Performance
		groups[i].count++
	}

	type avg struct {
		position string
		mean     float64
	}
	means := make([]avg, len(groups))
	for i, g := range groups {
		means[i] = avg{position: g.position, mean: g.sum / float64(g.count)}
	}
	slices.SortStableFunc(means, func(a, b avg) int {
		return cmp.Compare(b.mean, a.mean)
	})

	rows := make([]types.Row, len(means))
	for i, m := range means {
		rows[i] = types.Row{
			ColumnPosition:    m.position,
			ColumnPerformance: m.mean,
		}
	}

	return types.Table{
		Columns: []string{ColumnPosition, ColumnPerformance},
		Rows:    rows,
	}
}
