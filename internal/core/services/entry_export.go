package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/diary_app/internal/core/domain"
	"github.com/SscSPs/diary_app/internal/dto"
)

// Supported export formats.
const (
	ExportFormatCSV  = "csv"
	ExportFormatJSON = "json"
)

type exportFunc func(entries []domain.Entry) (*dto.ExportFile, error)

var exporters = map[string]exportFunc{
	ExportFormatCSV:  exportCSV,
	ExportFormatJSON: exportJSON,
}

var csvHeader = []string{"id", "date", "mood", "learned", "improvements", "gratitude", "lookingForward", "news", "createdAt", "updatedAt"}

func exportCSV(entries []domain.Entry) (*dto.ExportFile, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, e := range entries {
		record := []string{
			e.ID,
			e.Date.Format(domain.DateLayout),
			strconv.Itoa(e.Mood),
			e.Learned,
			e.Improvements,
			strings.Join(e.Gratitude, " | "),
			e.LookingForward,
			e.News,
			e.CreatedAt.UTC().Format(time.RFC3339),
			e.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return &dto.ExportFile{
		Filename:    "diary_entries.csv",
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

func exportJSON(entries []domain.Entry) (*dto.ExportFile, error) {
	data, err := json.MarshalIndent(dto.ToListEntryResponse(entries), "", "  ")
	if err != nil {
		return nil, err
	}
	return &dto.ExportFile{
		Filename:    "diary_entries.json",
		ContentType: "application/json",
		Data:        data,
	}, nil
}
