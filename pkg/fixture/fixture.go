// Package fixture loads literal plan.LocalRelation values from
// spreadsheet fixtures, grounded on the teacher's
// pkg/resource/excel_source.go, letting tests and worked examples build
// relations from .xlsx files instead of hand-written Go literals.
package fixture

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/sqlplan/logicplan/pkg/compileerr"
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
	"github.com/sqlplan/logicplan/pkg/types"
)

// LoadLocalRelation reads path's sheet and returns a resolved
// LocalRelation: the first row supplies column names, every remaining
// row is a materialized value row. A column's type is inferred from all
// of its non-empty cells: int64 if every one parses as an integer, else
// float64 if every one parses as a float, else string (also string when
// the column has no non-empty cell); a column is marked nullable if any
// row leaves its cell blank.
func LoadLocalRelation(path, sheet string) (*plan.LocalRelation, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: open %s: %w", path, err)
	}
	defer f.Close()

	rawRows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("fixture: read sheet %s: %w", sheet, err)
	}
	if len(rawRows) == 0 {
		return nil, compileerr.NewInternalError(fmt.Sprintf("fixture: sheet %s is empty", sheet))
	}

	header := rawRows[0]
	dataRows := rawRows[1:]

	intOK := make([]bool, len(header))
	floatOK := make([]bool, len(header))
	colNullable := make([]bool, len(header))
	sawValue := make([]bool, len(header))
	for i := range header {
		intOK[i], floatOK[i] = true, true
	}

	for _, r := range dataRows {
		for i := range header {
			var cell string
			if i < len(r) {
				cell = r[i]
			}
			if cell == "" {
				colNullable[i] = true
				continue
			}
			sawValue[i] = true
			if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
				intOK[i] = false
			}
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				floatOK[i] = false
			}
		}
	}

	colTypes := make([]types.DataType, len(header))
	for i := range header {
		switch {
		case !sawValue[i]:
			colTypes[i] = types.String
		case intOK[i]:
			colTypes[i] = types.Int64
		case floatOK[i]:
			colTypes[i] = types.Float64
		default:
			colTypes[i] = types.String
		}
	}

	schema := make([]*expr.AttributeRef, len(header))
	for i, name := range header {
		schema[i] = expr.NewAttributeRef(expr.NewAttrID(), name, colTypes[i], colNullable[i])
	}

	rows := make([]types.Row, 0, len(dataRows))
	for _, r := range dataRows {
		row := make(types.Row, len(header))
		for i := range header {
			var cell string
			if i < len(r) {
				cell = r[i]
			}
			row[i] = parseCell(cell, colTypes[i])
		}
		rows = append(rows, row)
	}

	return plan.NewLocalRelation(schema, rows), nil
}

func parseCell(cell string, typ types.DataType) any {
	if cell == "" {
		return nil
	}
	switch typ {
	case types.Int64:
		v, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return cell
		}
		return v
	case types.Float64:
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return cell
		}
		return v
	default:
		return cell
	}
}
