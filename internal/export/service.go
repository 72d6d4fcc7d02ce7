package export

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"realty-api/internal/domain"
	"realty-api/internal/repository"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Listings"

var columnHeaders = []any{
	"ID", "Title", "Price", "Status", "Type", "Address", "City", "State",
	"Zip Code", "Bedrooms", "Bathrooms", "Square Footage", "Lot Size",
	"Year Built", "Created At",
}

// Service renders filtered listings as an XLSX workbook.
type Service struct {
	repo repository.PropertyRepository
}

// NewService creates a new export service.
func NewService(repo repository.PropertyRepository) *Service {
	return &Service{repo: repo}
}

// WriteXLSX writes the listings matching filter to w as a single-sheet
// workbook, one row per listing.
func (s *Service) WriteXLSX(ctx context.Context, filter domain.PropertyFilter, w io.Writer) error {
	properties, err := s.repo.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to load listings for export: %w", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	f.SetSheetName(f.GetSheetName(0), sheetName)
	if err := f.SetSheetRow(sheetName, "A1", &columnHeaders); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for i, property := range properties {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address export row: %w", err)
		}
		row := listingRow(property)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func listingRow(p domain.Property) []any {
	return []any{
		p.ID, p.Title, p.Price, string(p.Status), p.PropertyType, p.Address,
		p.City, p.State, p.ZipCode,
		optionalInt(p.Bedrooms), optionalString(p.Bathrooms),
		optionalInt(p.SquareFootage), optionalString(p.LotSize),
		optionalInt(p.YearBuilt),
		p.CreatedAt.Format(time.RFC3339),
	}
}

func optionalInt(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}

func optionalString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
