package exporter

import (
	"bytes"
	"testing"
	"time"

	"notes-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildNotesWorkbook(t *testing.T) {
	desc := "shopping list"
	created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	notes := []*dto.NoteResponse{
		{
			Id:          1,
			Title:       "Groceries",
			Description: &desc,
			CreatedAt:   created,
			UpdatedAt:   created,
			Tags: []dto.NoteTagResponse{
				{Id: 1, Name: "Дом", Color: "#27AE60"},
				{Id: 2, Name: "Покупки", Color: "#FF5733"},
			},
		},
		{
			Id:        2,
			Title:     "No description",
			CreatedAt: created,
			UpdatedAt: created,
		},
	}

	data, err := BuildNotesWorkbook(notes)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Мои заметки"}, f.GetSheetList())

	rows, err := f.GetRows("Мои заметки")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"ID", "Заголовок", "Описание", "Теги", "Дата создания", "Дата обновления"}, rows[0])
	assert.Equal(t, []string{"1", "Groceries", "shopping list", "Дом, Покупки", "2025-03-14 09:26:53", "2025-03-14 09:26:53"}, rows[1])
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "No description", rows[2][1])
}

func TestBuildNotesWorkbookEmpty(t *testing.T) {
	data, err := BuildNotesWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Мои заметки")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "notes_export_20250314_092653.xlsx", ExportFilename(now))
}
