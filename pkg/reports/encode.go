package reports

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// WriteCSV writes a single table with its header row.
func WriteCSV(w io.Writer, table Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Header); err != nil {
		return errors.Wrap(err, "reports: write csv header")
	}
	if err := cw.WriteAll(table.Rows); err != nil {
		return errors.Wrap(err, "reports: write csv rows")
	}
	return nil
}

// WriteXLSX writes one sheet per table.
func WriteXLSX(w io.Writer, tables ...Table) error {
	if len(tables) == 0 {
		return errors.New("reports: workbook needs at least one table")
	}
	book := excelize.NewFile()
	defer book.Close()

	for i, table := range tables {
		if i == 0 {
			if err := book.SetSheetName(defaultSheet, table.Name); err != nil {
				return errors.Wrapf(err, "reports: name sheet %s", table.Name)
			}
		} else if _, err := book.NewSheet(table.Name); err != nil {
			return errors.Wrapf(err, "reports: add sheet %s", table.Name)
		}
		if err := writeSheetRow(book, table.Name, 1, table.Header); err != nil {
			return err
		}
		for r, row := range table.Rows {
			if err := writeSheetRow(book, table.Name, r+2, row); err != nil {
				return err
			}
		}
	}
	if err := book.Write(w); err != nil {
		return errors.Wrap(err, "reports: write workbook")
	}
	return nil
}

func writeSheetRow(book *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Wrapf(err, "reports: %s row %d", sheet, row)
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := book.SetSheetRow(sheet, cell, &cells); err != nil {
		return errors.Wrapf(err, "reports: %s row %d", sheet, row)
	}
	return nil
}
