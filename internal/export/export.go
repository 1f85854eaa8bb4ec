// Package export writes the aggregate tables to an xlsx workbook.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// Workbook builds an xlsx file one sheet at a time. Every cell is
// center-aligned and every column is sized to its widest value.
type Workbook struct {
	f      *excelize.File
	style  int
	sheets int
}

func NewWorkbook() (*Workbook, error) {
	f := excelize.NewFile()
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating cell style: %w", err)
	}
	return &Workbook{f: f, style: style}, nil
}

const (
	maxColumnWidth = 60
	widthPadding   = 2
)

// AddSheet appends one table as a sheet. The first sheet replaces the
// default one excelize creates.
func (w *Workbook) AddSheet(name string, headers []string, rows [][]string) error {
	name = SanitizeSheetName(name)

	if w.sheets == 0 {
		if err := w.f.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("naming sheet %q: %w", name, err)
		}
	} else if _, err := w.f.NewSheet(name); err != nil {
		return fmt.Errorf("adding sheet %q: %w", name, err)
	}
	w.sheets++

	widths := make([]int, len(headers))
	writeRow := func(rowIdx int, cells []string) error {
		for ci, val := range cells {
			axis, err := excelize.CoordinatesToCellName(ci+1, rowIdx)
			if err != nil {
				return err
			}
			if err := w.f.SetCellValue(name, axis, val); err != nil {
				return err
			}
			if ci < len(widths) && utf8.RuneCountInString(val) > widths[ci] {
				widths[ci] = utf8.RuneCountInString(val)
			}
		}
		return nil
	}

	if err := writeRow(1, headers); err != nil {
		return fmt.Errorf("sheet %q: %w", name, err)
	}
	for ri, row := range rows {
		if err := writeRow(ri+2, row); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
	}

	last, err := excelize.CoordinatesToCellName(len(headers), len(rows)+1)
	if err != nil {
		return fmt.Errorf("sheet %q: %w", name, err)
	}
	if err := w.f.SetCellStyle(name, "A1", last, w.style); err != nil {
		return fmt.Errorf("styling sheet %q: %w", name, err)
	}

	for ci, width := range widths {
		width += widthPadding
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		col, err := excelize.ColumnNumberToName(ci + 1)
		if err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
		if err := w.f.SetColWidth(name, col, col, float64(width)); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
	}
	return nil
}

// SaveTo writes the workbook to a writer.
func (w *Workbook) SaveTo(out io.Writer) error {
	if err := w.f.Write(out); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// SaveAs writes the workbook to a file path.
func (w *Workbook) SaveAs(path string) error {
	if err := w.f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook to %s: %w", path, err)
	}
	return nil
}

// SanitizeSheetName strips the characters xlsx forbids in sheet names and
// truncates to the 31-character limit.
func SanitizeSheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return -1
		}
		return r
	}, name)
	runes := []rune(name)
	if len(runes) > 31 {
		name = string(runes[:31])
	}
	if name == "" {
		name = "Sheet"
	}
	return name
}

// FileName builds the export file name, "LR - <subject> - <timestamp>.xlsx",
// with characters forbidden in file names stripped from the subject.
func FileName(subject string, t time.Time) string {
	subject = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '"', '<', '>', '|':
			return -1
		}
		return r
	}, subject)
	return fmt.Sprintf("LR - %s - %s.xlsx", subject, t.Format("2006.01.02-15.04.05"))
}
