package render

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/okian/workforce-analyzer/internal/domain/types"
)

// Supported export extensions.
const (
	FormatCSV  = ".csv"
	FormatXLSX = ".xlsx"
)

const (
	defaultSheet  = "Sheet1"
	maxSheetChars = 31
)

// CheckFormat reports ErrUnsupportedFormat when Export cannot write path.
func CheckFormat(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case FormatCSV, FormatXLSX:
		return nil
	}
	return fmt.Errorf("%w: %q (use %s or %s)", ErrUnsupportedFormat, path, FormatCSV, FormatXLSX)
}

// Export writes t to path. The format follows the file extension: .csv
// or .xlsx. sheet names the XLSX worksheet and is ignored for CSV.
func Export(path, sheet string, t types.Table, precision int) error {
	if err := CheckFormat(path); err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), FormatXLSX) {
		return exportXLSX(path, sheet, t, precision)
	}
	return exportCSV(path, t, precision)
}

func exportCSV(path string, t types.Table, precision int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExport, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %s: %w", ErrExport, path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExport, path, err)
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, v := range t.Values(row) {
			record[i] = formatValue(v, precision)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrExport, path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExport, path, err)
	}
	return nil
}

func exportXLSX(path, sheet string, t types.Table, precision int) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet = SheetName(sheet)
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrExport, path, err)
		}
	}

	numFmt := "0"
	if precision > 0 {
		numFmt += "." + strings.Repeat("0", precision)
	}
	floatStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExport, path, err)
	}

	set := func(col, row int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
		switch v.(type) {
		case float32, float64:
			return f.SetCellStyle(sheet, cell, cell, floatStyle)
		}
		return nil
	}

	for i, name := range t.Columns {
		if err := set(i+1, 1, name); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrExport, path, err)
		}
	}
	for r, row := range t.Rows {
		for i, v := range t.Values(row) {
			if err := set(i+1, r+2, v); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrExport, path, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExport, path, err)
	}
	return nil
}

// SheetName turns a report name into a valid worksheet name.
func SheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, name)
	name = strings.Trim(strings.TrimSpace(name), "'")
	if name == "" {
		return defaultSheet
	}
	if runes := []rune(name); len(runes) > maxSheetChars {
		name = string(runes[:maxSheetChars])
	}
	return name
}
