package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"agroledger/internal/model"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Column headers of the historical trip export.
const (
	ColumnDate          = "Fecha"
	ColumnProduct       = "Producto"
	ColumnSupplier      = "Proveedor"
	ColumnClient        = "Cliente"
	ColumnKgPurchased   = "Cantidad (Kg)"
	ColumnPurchasePrice = "Precio de Compra"
	ColumnKgSold        = "Cantidad (kg)"
	ColumnSalePrice     = "Precio de Venta"
)

// DateLayout is the day/month/year format the export writes dates in.
const DateLayout = "02/01/2006"

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing required column")

var requiredColumns = []string{ColumnDate, ColumnProduct}

// ParseStats counts what happened to each data row.
type ParseStats struct {
	Rows           int `json:"rows"`
	Parsed         int `json:"parsed"`
	SkippedDate    int `json:"skipped_date"`
	SkippedProduct int `json:"skipped_product"`
}

// Skipped is the number of rows that produced no trip.
func (s ParseStats) Skipped() int {
	return s.SkippedDate + s.SkippedProduct
}

// Parser reads the CSV export into ledger trips.
type Parser struct {
	// Location the export's dates are interpreted in.
	Location *time.Location
}

// NewParser creates a parser that reads dates as UTC calendar days.
func NewParser() *Parser {
	return &Parser{Location: time.UTC}
}

// Parse reads every row of r. Malformed money and quantity cells become
// zero; rows whose date cannot be read or that name no product are skipped.
func (p *Parser) Parse(ctx context.Context, r io.Reader) ([]model.Trip, ParseStats, error) {
	var stats ParseStats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, stats, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnDate)
		}
		return nil, stats, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := indexColumns(header)
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, stats, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}

	var trips []model.Trip
	for {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("failed to read CSV row %d: %w", stats.Rows+2, err)
		}
		if isBlank(record) {
			continue
		}
		stats.Rows++

		cell := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		date, err := time.ParseInLocation(DateLayout, cell(ColumnDate), loc)
		if err != nil {
			stats.SkippedDate++
			log.Debug().Int("row", stats.Rows+1).Str("value", cell(ColumnDate)).Msg("skipping row with unreadable date")
			continue
		}
		product := cell(ColumnProduct)
		if product == "" {
			stats.SkippedProduct++
			continue
		}

		trips = append(trips, model.Trip{
			Date:          time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
			Product:       product,
			Supplier:      cell(ColumnSupplier),
			Client:        cell(ColumnClient),
			KgPurchased:   CleanAmount(cell(ColumnKgPurchased)),
			PurchasePrice: CleanAmount(cell(ColumnPurchasePrice)),
			KgSold:        CleanAmount(cell(ColumnKgSold)),
			SalePrice:     CleanAmount(cell(ColumnSalePrice)),
			Source:        model.TripSourceImport,
		})
		stats.Parsed++
	}

	log.Info().
		Int("rows", stats.Rows).
		Int("parsed", stats.Parsed).
		Int("skipped", stats.Skipped()).
		Msg("parsed trip export")

	return trips, stats, nil
}

// CleanAmount strips currency symbols, thousands separators and spaces.
// Anything still unreadable is zero.
func CleanAmount(raw string) decimal.Decimal {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(raw)
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}
	return columns
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
