package exporter

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"notes-be/internal/dto"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName     = "Мои заметки"
	timestampFmt  = "2006-01-02 15:04:05"
	minColumnSpan = 6
)

var headers = []string{"ID", "Заголовок", "Описание", "Теги", "Дата создания", "Дата обновления"}

// BuildNotesWorkbook renders notes into a one-sheet xlsx workbook with the
// columns id / title / description / comma-joined tag names / timestamps.
func BuildNotesWorkbook(notes []*dto.NoteResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
	}

	widths := make([]int, minColumnSpan)
	for i, header := range headers {
		widths[i] = len([]rune(header))
	}

	for row, note := range notes {
		values := []interface{}{
			note.Id,
			note.Title,
			derefOrEmpty(note.Description),
			joinTagNames(note.Tags),
			note.CreatedAt.Format(timestampFmt),
			note.UpdatedAt.Format(timestampFmt),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
			if width := len([]rune(fmt.Sprint(value))); width > widths[col] {
				widths[col] = width
			}
		}
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, name, name, float64(width+2)); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFilename names the attachment with the moment of export.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("notes_export_%s.xlsx", now.Format("20060102_150405"))
}

func joinTagNames(tags []dto.NoteTagResponse) string {
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.Name
	}
	return strings.Join(names, ", ")
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
