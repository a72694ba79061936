// Package sheetstore reads and appends the fund's ledgers in Google Sheets.
//
// The spreadsheet is the source of truth maintained by the fund manager; this
// package only fetches raw rows and appends validated records, normalization
// lives in the fondo package.
package sheetstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/etnz/fondo"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// Store is a Google Sheets client bound to the two ledger spreadsheets.
type Store struct {
	svc          *gsheet.Service
	tradesID     string
	capitalID    string
	tradesSheet  string
	capitalSheet string
}

// NewFromEnv creates a Store using environment variables.
// Required: GOOGLE_SHEET_TRADES_ID and GOOGLE_SHEET_CAPITAL_ID (the same
// spreadsheet may serve both).
// Credentials: GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS.
// Optional tab names: GOOGLE_TRADES_SHEET_NAME (default "trades") and
// GOOGLE_CAPITAL_SHEET_NAME (default "capital").
func NewFromEnv(ctx context.Context) (*Store, error) {
	tradesID := strings.TrimSpace(os.Getenv("GOOGLE_SHEET_TRADES_ID"))
	if tradesID == "" {
		return nil, errors.New("missing GOOGLE_SHEET_TRADES_ID")
	}
	capitalID := strings.TrimSpace(os.Getenv("GOOGLE_SHEET_CAPITAL_ID"))
	if capitalID == "" {
		return nil, errors.New("missing GOOGLE_SHEET_CAPITAL_ID")
	}

	tradesSheet := strings.TrimSpace(os.Getenv("GOOGLE_TRADES_SHEET_NAME"))
	if tradesSheet == "" {
		tradesSheet = "trades"
	}
	capitalSheet := strings.TrimSpace(os.Getenv("GOOGLE_CAPITAL_SHEET_NAME"))
	if capitalSheet == "" {
		capitalSheet = "capital"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Store{
		svc:          svc,
		tradesID:     tradesID,
		capitalID:    capitalID,
		tradesSheet:  tradesSheet,
		capitalSheet: capitalSheet,
	}, nil
}

// newSheetsService initializes a Sheets Service using Service Account
// credentials from GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE,
// or GOOGLE_APPLICATION_CREDENTIALS.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		slog.InfoContext(ctx, "using inline service account credentials")
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		slog.InfoContext(ctx, "reading service account credentials", "path", serviceAccountFile)
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// Trades fetches the raw trade rows, header row excluded.
func (s *Store) Trades(ctx context.Context) ([]fondo.RawRow, error) {
	return s.fetch(ctx, s.tradesID, s.tradesSheet)
}

// Capital fetches the raw capital-movement rows, header row excluded.
func (s *Store) Capital(ctx context.Context) ([]fondo.RawRow, error) {
	return s.fetch(ctx, s.capitalID, s.capitalSheet)
}

func (s *Store) fetch(ctx context.Context, spreadsheetID, sheet string) ([]fondo.RawRow, error) {
	rng := fmt.Sprintf("%s!A:Z", sheet)
	resp, err := s.svc.Spreadsheets.Values.Get(spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	rows := rowsFromValues(resp.Values)
	slog.InfoContext(ctx, "fetched sheet", "sheet", sheet, "rows", len(rows))
	return rows, nil
}

// AppendTrade validates a trade and appends it to the trade sheet. Profit is
// written with 4 decimals and exposed capital with 2, the formats the sheet
// has always used.
func (s *Store) AppendTrade(ctx context.Context, t fondo.Trade) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	row := []any{
		t.Date.String(),
		t.Currency,
		t.Exchange,
		fmt.Sprintf("%.4f", t.Profit.Decimal().InexactFloat64()),
		fmt.Sprintf("%.2f", t.Exposed.Decimal().InexactFloat64()),
		t.Memo,
	}
	return s.append(ctx, s.tradesID, s.tradesSheet, row)
}

// AppendMovement validates a capital movement and appends it to the capital
// sheet. The amount is written with 2 decimals.
func (s *Store) AppendMovement(ctx context.Context, m fondo.Movement) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	row := []any{
		m.Investor.String(),
		fmt.Sprintf("%.2f", m.Amount.Decimal().InexactFloat64()),
		m.Date.String(),
		m.Kind.String(),
		m.Memo,
	}
	return s.append(ctx, s.capitalID, s.capitalSheet, row)
}

func (s *Store) append(ctx context.Context, spreadsheetID, sheet string, row []any) error {
	rng := fmt.Sprintf("%s!A:Z", sheet)
	vr := &gsheet.ValueRange{Values: [][]any{row}}
	_, err := s.svc.Spreadsheets.Values.Append(spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append to sheet %s: %w", sheet, err)
	}
	slog.InfoContext(ctx, "appended row", "sheet", sheet)
	return nil
}
