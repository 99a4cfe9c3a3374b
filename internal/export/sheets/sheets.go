package sheets

import (
	"context"
	"fmt"
	"log"

	"leetcrawl/internal/domain"
	"leetcrawl/internal/export"
	"leetcrawl/internal/group"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Exporter pushes crawl results into a Google spreadsheet. The token source
// is built by the caller; this package holds no credential state of its own.
type Exporter struct {
	svc *sheetsapi.Service
}

func NewExporter(ctx context.Context, ts oauth2.TokenSource) (*Exporter, error) {
	svc, err := sheetsapi.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Exporter{svc: svc}, nil
}

// ExportPosts creates a spreadsheet with a single worksheet holding every
// post. Any API error aborts the whole export.
func (e *Exporter) ExportPosts(ctx context.Context, title string, posts []domain.Post) (string, error) {
	id, err := e.createSpreadsheet(ctx, title)
	if err != nil {
		return "", err
	}
	if err := e.writeSheet(ctx, id, "Interview Questions", posts); err != nil {
		return "", err
	}
	log.Printf("[sheets] exported %d posts to spreadsheet %s", len(posts), id)
	return id, nil
}

// ExportGroups creates a spreadsheet with one worksheet per month bucket,
// named from the bucket key ("2024-01", "unknown", ...).
func (e *Exporter) ExportGroups(ctx context.Context, title string, groups []group.Group) (string, error) {
	id, err := e.createSpreadsheet(ctx, title)
	if err != nil {
		return "", err
	}
	for _, g := range groups {
		if err := e.writeSheet(ctx, id, g.Key.String(), g.Posts); err != nil {
			return "", err
		}
	}
	log.Printf("[sheets] exported %d month sheets to spreadsheet %s", len(groups), id)
	return id, nil
}

func (e *Exporter) createSpreadsheet(ctx context.Context, title string) (string, error) {
	ss, err := e.svc.Spreadsheets.Create(&sheetsapi.Spreadsheet{
		Properties: &sheetsapi.SpreadsheetProperties{Title: title},
	}).Fields("spreadsheetId").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create spreadsheet: %w", err)
	}
	return ss.SpreadsheetId, nil
}

func (e *Exporter) writeSheet(ctx context.Context, spreadsheetID, name string, posts []domain.Post) error {
	sheetID, err := e.addSheet(ctx, spreadsheetID, name)
	if err != nil {
		return err
	}

	vr := &sheetsapi.ValueRange{Values: valueRows(posts)}
	_, err = e.svc.Spreadsheets.Values.
		Update(spreadsheetID, name+"!A1", vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("write sheet %q: %w", name, err)
	}

	return e.formatHeader(ctx, spreadsheetID, sheetID)
}

func (e *Exporter) addSheet(ctx context.Context, spreadsheetID, name string) (int64, error) {
	res, err := e.svc.Spreadsheets.BatchUpdate(spreadsheetID, &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			AddSheet: &sheetsapi.AddSheetRequest{
				Properties: &sheetsapi.SheetProperties{Title: name},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("add sheet %q: %w", name, err)
	}
	return res.Replies[0].AddSheet.Properties.SheetId, nil
}

// formatHeader bolds and freezes the header row.
func (e *Exporter) formatHeader(ctx context.Context, spreadsheetID string, sheetID int64) error {
	_, err := e.svc.Spreadsheets.BatchUpdate(spreadsheetID, &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{
			{
				RepeatCell: &sheetsapi.RepeatCellRequest{
					Range: &sheetsapi.GridRange{
						SheetId:       sheetID,
						StartRowIndex: 0,
						EndRowIndex:   1,
					},
					Cell: &sheetsapi.CellData{
						UserEnteredFormat: &sheetsapi.CellFormat{
							BackgroundColor: &sheetsapi.Color{Red: 0.9, Green: 0.9, Blue: 0.9},
							TextFormat:      &sheetsapi.TextFormat{Bold: true},
						},
					},
					Fields: "userEnteredFormat(backgroundColor,textFormat)",
				},
			},
			{
				UpdateSheetProperties: &sheetsapi.UpdateSheetPropertiesRequest{
					Properties: &sheetsapi.SheetProperties{
						SheetId:        sheetID,
						GridProperties: &sheetsapi.GridProperties{FrozenRowCount: 1},
					},
					Fields: "gridProperties.frozenRowCount",
				},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("format header: %w", err)
	}
	return nil
}

// valueRows renders posts into the sheet payload, same column order as the
// CSV writer.
func valueRows(posts []domain.Post) [][]interface{} {
	rows := make([][]interface{}, 0, len(posts)+1)

	header := export.Header()
	hr := make([]interface{}, len(header))
	for i, h := range header {
		hr[i] = h
	}
	rows = append(rows, hr)

	for _, p := range posts {
		row := export.Row(p)
		r := make([]interface{}, len(row))
		for i, v := range row {
			r[i] = v
		}
		rows = append(rows, r)
	}
	return rows
}
