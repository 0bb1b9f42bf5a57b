// file: internals/features/exports/service/excel.go
package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"planhebdo_backend/internals/helpers/rowfield"
)

var weekHeaders = []string{
	"Enseignant", "Jour", "Période", "Classe", "Matière",
	"Leçon", "Travaux de classe", "Support", "Devoirs",
}

var weekColWidths = []float64{20, 15, 10, 12, 20, 45, 45, 25, 45}

var reportHeaders = []string{
	"Mois", "Semaine", "Période", "Leçon", "Travaux de classe", "Support", "Devoirs",
}

var reportColWidths = []float64{12, 10, 10, 40, 40, 25, 40}

// RenderWeekWorkbook rend toutes les lignes d'une semaine dans un classeur
// à onglet unique "Plan S<N>".
func RenderWeekWorkbook(week int, rows []rowfield.Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("Plan S%d", week)
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	if err := writeSheet(f, sheet, weekHeaders, weekColWidths, len(rows), func(r int, record []any) {
		for c, h := range weekHeaders {
			record[c] = rowfield.StringValue(rows[r], h, "")
		}
	}); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderClassReport rend le rapport annuel d'une classe, un onglet par
// matière (ordre alphabétique).
func RenderClassReport(bySubject map[string][]ReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for _, subject := range SortedSubjects(bySubject) {
		rows := bySubject[subject]
		sheet := SafeSheetName(subject)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
		err := writeSheet(f, sheet, reportHeaders, reportColWidths, len(rows), func(r int, record []any) {
			row := rows[r]
			record[0] = row.Mois
			record[1] = row.Semaine
			record[2] = row.Periode
			record[3] = row.Lecon
			record[4] = row.TravauxDeClasse
			record[5] = row.Support
			record[6] = row.Devoirs
		})
		if err != nil {
			return nil, err
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeSheet pose les en-têtes, les largeurs de colonnes puis chaque ligne
// produite par fill.
func writeSheet(f *excelize.File, sheet string, headers []string, widths []float64, rowCount int, fill func(r int, record []any)) error {
	for c, h := range headers {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for c, w := range widths {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}
	record := make([]any, len(headers))
	for r := 0; r < rowCount; r++ {
		fill(r, record)
		for c, v := range record {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
