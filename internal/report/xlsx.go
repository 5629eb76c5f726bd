package report

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rubendecampos/pdf-summarization/internal/core/domain"
)

// RenderXLSX produces a workbook with one row per analyzed document
// and a second sheet for skipped files.
func RenderXLSX(rep domain.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Documents"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{
		"Filename", "Content Type", "Urgency", "Action Items",
		"Characters", "Themes", "Key Points", "Summary", "Degraded",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	row := 2
	for _, ct := range domain.AllContentTypes() {
		for _, doc := range rep.Groups[ct] {
			a := doc.Analysis
			values := []any{
				doc.Filename,
				string(a.ContentType),
				string(a.Urgency),
				strings.Join(a.ActionItems, "; "),
				strings.Join(a.Characters, "; "),
				strings.Join(a.Themes, "; "),
				strings.Join(a.KeyPoints, "; "),
				a.Summary,
				a.Degraded,
			}
			for i, v := range values {
				cell, err := excelize.CoordinatesToCellName(i+1, row)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return nil, err
				}
			}
			row++
		}
	}

	if len(rep.Skips) > 0 {
		const skipSheet = "Skipped"
		if _, err := f.NewSheet(skipSheet); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(skipSheet, "A1", "Filename"); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(skipSheet, "B1", "Reason"); err != nil {
			return nil, err
		}
		for i, skip := range rep.Skips {
			cellA, _ := excelize.CoordinatesToCellName(1, i+2)
			cellB, _ := excelize.CoordinatesToCellName(2, i+2)
			if err := f.SetCellValue(skipSheet, cellA, skip.Filename); err != nil {
				return nil, err
			}
			if err := f.SetCellValue(skipSheet, cellB, skip.Reason); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
