package generator

import (
	"fmt"
	"strings"

	"github.com/moneygate/tool-service/template"

	"github.com/xuri/excelize/v2"
)

// Workbook is the in-memory spreadsheet built from a recipe: ordered named
// sheets holding rows of cells. A string cell starting with '=' is written
// out as a formula.
type Workbook struct {
	Sheets []Sheet
}

type Sheet struct {
	Name string
	Rows [][]any
}

// BuildSpreadsheet synthesizes a workbook for the options' template.
// Known templates emit their fixed grid plus the optional extra sheets;
// unknown templates emit a single sheet echoing title and description.
// Output depends only on the input.
func BuildSpreadsheet(opts SpreadsheetOptions) (*Workbook, error) {
	recipe := template.ResolveSpreadsheet(opts.TemplateID)

	wb := &Workbook{}
	if recipe.Generic {
		rows := [][]any{
			{opts.Title, "", "", "", ""},
			{opts.Description, "", "", "", ""},
			{"", "", "", "", ""},
		}
		if len(opts.Columns) > 0 {
			header := make([]any, len(opts.Columns))
			for i, c := range opts.Columns {
				header[i] = c
			}
			rows = append(rows, header)
		}
		for i, row := range opts.Rows {
			if err := validateRow(row, i); err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
		wb.Sheets = append(wb.Sheets, Sheet{Name: recipe.SheetName, Rows: rows})
		return wb, nil
	}

	wb.Sheets = append(wb.Sheets, Sheet{Name: recipe.SheetName, Rows: recipe.Rows})

	if opts.IncludeResourceLinks && recipe.Instructions != nil {
		wb.Sheets = append(wb.Sheets, Sheet{Name: recipe.Instructions.Name, Rows: recipe.Instructions.Rows})
	}

	if recipe.Breakdown != nil &&
		(opts.Complexity == template.ComplexityDetailed || opts.Complexity == template.ComplexityComprehensive) {
		wb.Sheets = append(wb.Sheets, Sheet{Name: recipe.Breakdown.Name, Rows: recipe.Breakdown.Rows})
	}

	return wb, nil
}

// EncodeXLSX serializes the workbook to xlsx bytes.
func EncodeXLSX(wb *Workbook) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range wb.Sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return nil, fmt.Errorf("rename sheet %q: %w", sheet.Name, err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return nil, fmt.Errorf("add sheet %q: %w", sheet.Name, err)
			}
		}
		for r, row := range sheet.Rows {
			for c, v := range row {
				if s, ok := v.(string); ok && s == "" {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return nil, fmt.Errorf("cell (%d,%d): %w", r, c, err)
				}
				if s, ok := v.(string); ok && strings.HasPrefix(s, "=") {
					if err := f.SetCellFormula(sheet.Name, cell, strings.TrimPrefix(s, "=")); err != nil {
						return nil, fmt.Errorf("formula %s!%s: %w", sheet.Name, cell, err)
					}
					continue
				}
				if err := f.SetCellValue(sheet.Name, cell, v); err != nil {
					return nil, fmt.Errorf("cell %s!%s: %w", sheet.Name, cell, err)
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// validateRow rejects override cells the xlsx encoder cannot represent,
// so a bad override fails synthesis instead of producing a broken sheet.
func validateRow(row []any, idx int) error {
	if row == nil {
		return fmt.Errorf("row override %d is nil", idx)
	}
	for c, v := range row {
		switch v.(type) {
		case string, bool, int, int32, int64, float32, float64:
		default:
			return fmt.Errorf("row override %d column %d: unsupported cell value of type %T", idx, c, v)
		}
	}
	return nil
}
