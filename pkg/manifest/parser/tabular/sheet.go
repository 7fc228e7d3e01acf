package tabular

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/normalize"
)

// _Sheet reads raw cell values. Cells typed as numbers hold their stored value; text cells are
// read with the configured decimal style.
type _Sheet struct {
	file     *excelize.File
	name     string
	rows     [][]string
	style    normalize.Style
	problems []error
}

func openSheet(f *excelize.File, style normalize.Style) (*_Sheet, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, model.NewValidationError("workbook has no sheet")
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, model.NewValidationError("sheet %s: %s", sheets[0], err.Error())
	}
	return &_Sheet{file: f, name: sheets[0], rows: rows, style: style}, nil
}

// raw returns the value of a cell by zero based column and one based row.
func (s *_Sheet) raw(col, row int) string {
	if row < 1 || row > len(s.rows) || col >= len(s.rows[row-1]) {
		return ""
	}
	return strings.TrimSpace(s.rows[row-1][col])
}

func (s *_Sheet) numeric(col, row int) bool {
	axis, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return false
	}
	t, err := s.file.GetCellType(s.name, axis)
	if err != nil {
		return false
	}
	return t == excelize.CellTypeUnset || t == excelize.CellTypeNumber
}

func (s *_Sheet) cell(axis string) (col, row int, ok bool) {
	c, r, err := excelize.CellNameToCoordinates(axis)
	if err != nil {
		return 0, 0, false
	}
	return c - 1, r, true
}

func (s *_Sheet) text(col, row int) string {
	return normalize.Text(s.raw(col, row))
}

func (s *_Sheet) problem(format string, args ...any) {
	s.problems = append(s.problems, model.NewValidationError(format, args...))
}

func (s *_Sheet) number(owner string, col, row int) decimal.Decimal {
	raw := s.raw(col, row)
	if raw == "" {
		return decimal.Zero
	}
	if s.numeric(col, row) {
		if d, err := decimal.NewFromString(raw); err == nil {
			return d
		}
	}
	d, err := normalize.Decimal(raw, s.style)
	if err != nil {
		s.problem("%s: column %s %q is not a number", owner, columnName(col), raw)
	}
	return d
}

func (s *_Sheet) weight(owner string, col, row int) decimal.Decimal {
	raw := s.raw(col, row)
	if raw == "" || s.numeric(col, row) {
		return s.number(owner, col, row)
	}
	w, err := normalize.Weight(raw, "", s.style)
	if err != nil {
		s.problem("%s: column %s %q is not a weight", owner, columnName(col), raw)
	}
	return w
}

func (s *_Sheet) optional(owner string, col, row int) *decimal.Decimal {
	if s.raw(col, row) == "" {
		return nil
	}
	d := s.number(owner, col, row)
	return &d
}

// date reads a date typed as a spreadsheet serial number or written as text.
func (s *_Sheet) date(owner string, col, row int) time.Time {
	raw := s.raw(col, row)
	if raw == "" {
		return time.Time{}
	}
	if s.numeric(col, row) {
		if serial, err := strconv.ParseFloat(raw, 64); err == nil {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return t
			}
		}
	}
	t, err := normalize.Date(raw)
	if err != nil {
		s.problem("%s: column %s %q is not a date", owner, columnName(col), raw)
	}
	return t
}

func columnName(col int) string {
	name, _ := excelize.ColumnNumberToName(col + 1)
	return name
}
