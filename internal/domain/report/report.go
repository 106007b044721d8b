// Package report defines report strategies and the registry that names them.
package report

import (
	"github.com/okian/workforce-analyzer/internal/domain/model"
	"github.com/okian/workforce-analyzer/internal/domain/types"
)

// Strategy turns employees into a report table.
type Strategy interface {
	// Name is the lowercase key the strategy is registered under.
	Name() string

	// Generate builds the table. An empty input yields a table without rows.
	Generate(employees []model.Employee) types.Table
}
