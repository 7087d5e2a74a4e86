package stock

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	pkgerrors "github.com/medihouse/medihouse-backend/pkg/errors"
)

// Row is one parsed (product, quantity) line from an uploaded sheet.
type Row struct {
	ProductName   string
	StockQuantity int
}

// headerRule classifies one header cell into a column role. Rules are
// evaluated in order across the whole row, so a higher-priority keyword
// in a later cell beats a lower-priority keyword in an earlier one
// ("Item Code" loses the name column to "Product Name").
type headerRule struct {
	keyword string
}

func (r headerRule) matches(cell string) bool {
	return strings.Contains(cell, r.keyword)
}

var nameRules = []headerRule{
	{"product"},
	{"name"},
	{"item"},
	{"medicine"},
	{"drug"},
}

var stockRules = []headerRule{
	{"stock"},
	{"quantity"},
	{"qty"},
	{"qnty"},
	{"available"},
	{"balance"},
}

const headerScanRows = 20

// ParseWorkbook reads the first sheet of an Excel workbook and extracts
// (product name, stock quantity) rows. Header detection scans the first
// 20 rows for name/stock keyword columns, falling back to positional
// guesses when no header is recognized.
func ParseWorkbook(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "could not read Excel file")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Excel file is empty")
	}

	data, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "could not read Excel rows")
	}
	if len(data) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Excel file is empty")
	}

	headerRow, nameCol, stockCol := locateColumns(data)

	var rows []Row
	start := headerRow + 1
	if headerRow < 0 {
		start = 1
	}
	for i := start; i < len(data); i++ {
		row := data[i]
		if len(row) == 0 {
			continue
		}

		name := strings.TrimSpace(cellAt(row, nameCol))
		if skipRow(name) {
			continue
		}

		rows = append(rows, Row{
			ProductName:   name,
			StockQuantity: parseQuantity(cellAt(row, stockCol)),
		})
	}

	return rows, nil
}

func locateColumns(data [][]string) (headerRow, nameCol, stockCol int) {
	headerRow, nameCol, stockCol = -1, -1, -1

	limit := len(data)
	if limit > headerScanRows {
		limit = headerScanRows
	}
	for i := 0; i < limit; i++ {
		row := data[i]
		if len(row) == 0 {
			continue
		}
		if nameCol == -1 {
			nameCol = classify(row, nameRules)
		}
		if stockCol == -1 {
			stockCol = classify(row, stockRules)
		}
		if nameCol >= 0 && stockCol >= 0 {
			headerRow = i
			break
		}
	}

	if headerRow == -1 && nameCol >= 0 && stockCol >= 0 {
		headerRow = 0
	}
	if nameCol == -1 {
		nameCol = 0
	}
	if stockCol == -1 {
		stockCol = guessStockColumn(data, headerRow, nameCol)
	}
	return headerRow, nameCol, stockCol
}

// classify applies the rules in priority order; the first rule that
// matches any cell claims that cell's column.
func classify(row []string, rules []headerRule) int {
	for _, rule := range rules {
		for j, raw := range row {
			cell := strings.ToLower(strings.TrimSpace(raw))
			if cell == "" {
				continue
			}
			if rule.matches(cell) {
				return j
			}
		}
	}
	return -1
}

// guessStockColumn falls back to the first numeric-looking cell after
// the name column, then to the column right of it.
func guessStockColumn(data [][]string, headerRow, nameCol int) int {
	probe := 0
	if headerRow >= 0 {
		probe = headerRow
	}
	if probe < len(data) {
		row := data[probe]
		for j := nameCol + 1; j < len(row); j++ {
			cell := strings.TrimSpace(row[j])
			if cell == "" {
				continue
			}
			if _, err := strconv.ParseFloat(cell, 64); err == nil {
				return j
			}
		}
	}
	return nameCol + 1
}

func skipRow(name string) bool {
	if name == "" {
		return true
	}
	lowered := strings.ToLower(name)
	return lowered == "product" ||
		lowered == "name" ||
		strings.Contains(lowered, "total") ||
		strings.Contains(lowered, "sum")
}

// parseQuantity cleans a raw cell (thousands separators, stray units)
// down to its numeric core. Anything unparseable or negative counts
// as zero rather than failing the row.
func parseQuantity(raw string) int {
	value := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	value = strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, value)
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed < 0 {
		return 0
	}
	return int(math.Floor(math.Abs(parsed)))
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
