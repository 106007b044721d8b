// Package loader reads employee records from CSV files.
package loader

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/okian/workforce-analyzer/internal/domain/dedupe"
	"github.com/okian/workforce-analyzer/internal/domain/model"
	"github.com/okian/workforce-analyzer/internal/domain/skills"
	"github.com/okian/workforce-analyzer/pkg/logger"
	"github.com/okian/workforce-analyzer/pkg/metrics"
)

// CSV column names.
const (
	ColumnName            = "name"
	ColumnPosition        = "position"
	ColumnCompletedTasks  = "completed_tasks"
	ColumnPerformance     = "performance"
	ColumnSkills          = "skills"
	ColumnTeam            = "team"
	ColumnExperienceYears = "experience_years"
)

// RequiredColumns lists the header fields every input file must carry.
var RequiredColumns = []string{
	ColumnName,
	ColumnPosition,
	ColumnCompletedTasks,
	ColumnPerformance,
	ColumnSkills,
	ColumnTeam,
	ColumnExperienceYears,
}

// rowCheckInterval is how often, in rows, the context is checked.
const rowCheckInterval = 1000

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Loader turns CSV files into validated employees.
type Loader struct {
	logger  logger.Logger
	metrics *metrics.Manager
}

// New constructs a Loader. Without WithLogger warnings are discarded.
func New(opts ...Option) *Loader {
	l := &Loader{logger: logger.Nop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads every path once, in first-seen order, and returns the employees
// of all files concatenated in file then row order. Bad rows are logged and
// skipped. A missing file, a header without the required columns or any
// other read failure stops the load and no employees are returned.
func (l *Loader) Load(ctx context.Context, paths []string) ([]model.Employee, error) {
	employees := make([]model.Employee, 0)
	for _, path := range dedupe.Strings(paths, dedupe.WithNormalizer(filepath.Clean)) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		recs, err := l.LoadFile(ctx, path)
		if err != nil {
			return nil, err
		}
		employees = append(employees, recs...)
	}
	return employees, nil
}

// LoadFile reads a single CSV file.
func (l *Loader) LoadFile(ctx context.Context, path string) ([]model.Employee, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
	}
	defer func() { _ = f.Close() }()

	recs, err := l.Read(ctx, path, f)
	if err != nil {
		return nil, err
	}
	l.metrics.RecordFileLoaded()
	return recs, nil
}

// Read parses CSV content from r. name is used in errors and warnings only.
func (l *Loader) Read(ctx context.Context, name string, r io.Reader) ([]model.Employee, error) {
	br := bufio.NewReader(transform.NewReader(r, encoding.UTF8Validator))
	if prefix, _ := br.Peek(len(utf8BOM)); bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFile, name, err)
	}
	columns, err := indexHeader(name, header)
	if err != nil {
		return nil, err
	}

	employees := make([]model.Employee, 0)
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReadFile, name, err)
		}
		line++

		if line%rowCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		emp, err := parseRow(columns, rec)
		if err != nil {
			l.logger.Warn(ctx, "skipping row with invalid data",
				logger.String("file", name),
				logger.Int("line", line),
				logger.Error(err),
			)
			l.metrics.RecordRowSkipped()
			continue
		}
		l.metrics.RecordRowLoaded()
		employees = append(employees, emp)
	}

	l.logger.Debug(ctx, "file loaded", logger.String("file", name), logger.Int("employees", len(employees)))
	return employees, nil
}

// indexHeader maps column names to positions. A repeated name resolves to
// its last occurrence.
func indexHeader(name string, header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, col := range header {
		columns[col] = i
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := columns[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &HeaderError{Path: name, Missing: missing}
	}
	return columns, nil
}

// parseRow converts one record into a validated employee.
func parseRow(columns map[string]int, rec []string) (model.Employee, error) {
	get := func(col string) (string, error) {
		i := columns[col]
		if i >= len(rec) {
			return "", &FieldError{Column: col, Err: ErrMissingValue}
		}
		return rec[i], nil
	}

	var errs []error
	text := func(col string) string {
		v, err := get(col)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}
	integer := func(col string) int {
		v, err := get(col)
		if err != nil {
			errs = append(errs, err)
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, &FieldError{Column: col, Value: v, Want: "integer", Err: ErrInvalidValue})
		}
		return n
	}
	number := func(col string) float64 {
		v, err := get(col)
		if err != nil {
			errs = append(errs, err)
			return 0
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			errs = append(errs, &FieldError{Column: col, Value: v, Want: "number", Err: ErrInvalidValue})
		}
		return f
	}

	emp := model.Employee{
		Name:            text(ColumnName),
		Position:        text(ColumnPosition),
		CompletedTasks:  integer(ColumnCompletedTasks),
		Performance:     number(ColumnPerformance),
		Skills:          skills.Parse(text(ColumnSkills)),
		Team:            text(ColumnTeam),
		ExperienceYears: integer(ColumnExperienceYears),
	}
	switch len(errs) {
	case 0:
	case 1:
		return model.Employee{}, errs[0]
	default:
		return model.Employee{}, errors.Join(errs...)
	}
	if err := emp.Validate(); err != nil {
		return model.Employee{}, err
	}
	return emp, nil
}
