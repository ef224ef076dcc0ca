// Package export writes the optional spreadsheet companion of a report,
// one sheet per tabular section.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"sintese/internal/domain"
)

const (
	sheetParties = "Partes"
	sheetHistory = "Histórico"
	sheetAmounts = "Valores"
)

// WriteXLSX writes the report's parties, full chronological history and
// monetary values as an Excel workbook at path.
func WriteXLSX(r *domain.Report, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetParties); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetHistory); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheetHistory, err)
	}
	if _, err := f.NewSheet(sheetAmounts); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheetAmounts, err)
	}

	if err := writeParties(f, r.Parties); err != nil {
		return err
	}
	if err := writeHistory(f, r.ProceduralHistory, r.FactTimeline); err != nil {
		return err
	}
	if err := writeAmounts(f, r.Amounts); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeParties(f *excelize.File, parties []domain.Party) error {
	rows := [][]interface{}{{"Polo", "Nome", "Advogado"}}
	for _, p := range parties {
		rows = append(rows, []interface{}{p.Role, p.Name, p.Attorney})
	}
	return writeRows(f, sheetParties, rows)
}

func writeHistory(f *excelize.File, procedural, factual []domain.Event) error {
	rows := [][]interface{}{{"Data", "Categoria", "Evento", "Descrição"}}
	for _, e := range procedural {
		rows = append(rows, []interface{}{e.Date, string(domain.CategoryProcedural), e.Type, e.Description})
	}
	for _, e := range factual {
		rows = append(rows, []interface{}{e.Date, string(domain.CategoryFactual), e.Type, e.Description})
	}
	return writeRows(f, sheetHistory, rows)
}

func writeAmounts(f *excelize.File, amounts []domain.MonetaryValue) error {
	rows := [][]interface{}{{"Descrição", "Valor"}}
	for _, v := range amounts {
		rows = append(rows, []interface{}{v.Description, v.Value})
	}
	return writeRows(f, sheetAmounts, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
