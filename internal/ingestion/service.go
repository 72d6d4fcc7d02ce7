package ingestion

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"realty-api/internal/domain"
	"realty-api/internal/repository"
	"realty-api/internal/validation"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrUnsupportedFormat is returned when an uploaded file is not supported.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	byteOrderMark = []byte{0xEF, 0xBB, 0xBF}
)

// Service ingests tabular listing data into the property repository.
type Service struct {
	repo repository.PropertyRepository
}

// NewService creates a new ingestion service.
func NewService(repo repository.PropertyRepository) *Service {
	return &Service{repo: repo}
}

// Request describes the ingestion input.
type Request struct {
	FileName string
	Data     io.Reader
}

// RowError reports why a single row was rejected. Row numbers are 1-based
// and count the header row.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Summary returns ingestion results back to clients.
type Summary struct {
	FileName  string     `json:"fileName"`
	TotalRows int        `json:"totalRows"`
	Created   int        `json:"created"`
	Errors    []RowError `json:"errors,omitempty"`
}

// Ingest parses the uploaded table, validates each row as a listing insert
// and stores the valid ones. Invalid rows are reported, not fatal.
func (s *Service) Ingest(ctx context.Context, req Request) (Summary, error) {
	payload, err := io.ReadAll(req.Data)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read upload: %w", err)
	}

	records, err := parseTable(req.FileName, payload)
	if err != nil {
		return Summary{}, err
	}
	if len(records) == 0 {
		return Summary{}, errors.New("file contains no rows")
	}

	header := normalizeHeader(records[0])
	rows := records[1:]

	summary := Summary{FileName: req.FileName, TotalRows: len(rows)}
	for i, row := range rows {
		rowNumber := i + 2
		insert, err := rowToInsert(header, row)
		if err == nil {
			err = validation.Struct(insert)
		}
		if err != nil {
			summary.Errors = append(summary.Errors, RowError{Row: rowNumber, Message: err.Error()})
			continue
		}
		if _, err := s.repo.Create(ctx, insert); err != nil {
			return Summary{}, fmt.Errorf("failed to store row %d: %w", rowNumber, err)
		}
		summary.Created++
	}
	return summary, nil
}

func parseTable(fileName string, payload []byte) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".csv":
		return parseCSV(payload)
	case ".xlsx":
		return parseExcel(payload)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func parseCSV(payload []byte) ([][]string, error) {
	reader := bufio.NewReader(bytes.NewReader(payload))
	if prefix, err := reader.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = reader.Discard(len(byteOrderMark))
	}

	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return records, nil
}

func parseExcel(payload []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx contains no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read xlsx rows: %w", err)
	}
	return rows, nil
}

func normalizeHeader(cells []string) map[string]int {
	header := make(map[string]int, len(cells))
	for i, cell := range cells {
		name := strings.ToLower(strings.TrimSpace(cell))
		name = strings.ReplaceAll(name, " ", "")
		name = strings.ReplaceAll(name, "_", "")
		if name != "" {
			header[name] = i
		}
	}
	return header
}

// rowToInsert maps a table row onto the listing insert shape. List-valued
// columns (images, amenities, features) are semicolon-separated.
func rowToInsert(header map[string]int, row []string) (domain.PropertyInsert, error) {
	cell := func(name string) string {
		idx, ok := header[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	insert := domain.PropertyInsert{
		Title:        cell("title"),
		Description:  cell("description"),
		Price:        cell("price"),
		Address:      cell("address"),
		City:         cell("city"),
		State:        cell("state"),
		ZipCode:      cell("zipcode"),
		PropertyType: cell("propertytype"),
		Status:       domain.Status(cell("status")),
		Images:       splitList(cell("images")),
		Amenities:    splitList(cell("amenities")),
		Features:     splitList(cell("features")),
	}

	var err error
	if insert.Bedrooms, err = optionalInt(cell("bedrooms")); err != nil {
		return domain.PropertyInsert{}, fmt.Errorf("bedrooms: %w", err)
	}
	if insert.SquareFootage, err = optionalInt(cell("squarefootage")); err != nil {
		return domain.PropertyInsert{}, fmt.Errorf("squareFootage: %w", err)
	}
	if insert.YearBuilt, err = optionalInt(cell("yearbuilt")); err != nil {
		return domain.PropertyInsert{}, fmt.Errorf("yearBuilt: %w", err)
	}
	if raw := cell("bathrooms"); raw != "" {
		insert.Bathrooms = &raw
	}
	if raw := cell("lotsize"); raw != "" {
		insert.LotSize = &raw
	}
	return insert, nil
}

func optionalInt(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("not a whole number: %q", raw)
	}
	return &value, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ";")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
