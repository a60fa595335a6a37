package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"

	"github.com/thedittmer/research-agent/internal/models"
)

type SheetsConfig struct {
	CredentialsFile string
	TokenFile       string
	SpreadsheetID   string
}

func NewSheetsConfig(dataDir string) *SheetsConfig {
	return &SheetsConfig{
		CredentialsFile: filepath.Join(dataDir, "credentials.json"),
		TokenFile:       filepath.Join(dataDir, "token.json"),
	}
}

// Add helper function to get service account email
func (s *Storage) getServiceAccountEmail() string {
	credentials, err := os.ReadFile(filepath.Join(s.dataDir, "credentials.json"))
	if err != nil {
		return "unknown"
	}

	var creds struct {
		ClientEmail string `json:"client_email"`
	}
	if err := json.Unmarshal(credentials, &creds); err != nil {
		return "unknown"
	}

	return creds.ClientEmail
}

func (s *Storage) createNewSpreadsheet(sheetsService *sheets.Service, driveService *drive.Service) (string, error) {
	// Generate a unique filename with timestamp
	timestamp := time.Now().Format("2006-01-02-15-04-05")
	spreadsheetTitle := fmt.Sprintf("Research Agent - %s", timestamp)

	// Create new spreadsheet
	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title: spreadsheetTitle,
		},
		Sheets: []*sheets.Sheet{
			{
				Properties: &sheets.SheetProperties{
					Title: "Sheet1",
				},
			},
		},
	}

	spreadsheet, err := sheetsService.Spreadsheets.Create(spreadsheet).Do()
	if err != nil {
		return "", fmt.Errorf("unable to create spreadsheet: %v", err)
	}

	// Share with the service account
	permission := &drive.Permission{
		Type:         "user",
		Role:         "writer",
		EmailAddress: s.getServiceAccountEmail(),
	}

	// Try to share with the service account, but don't fail if it doesn't work
	_, err = driveService.Permissions.Create(spreadsheet.SpreadsheetId, permission).SupportsAllDrives(true).Do()
	if err != nil {
		fmt.Printf("Note: Could not explicitly share with service account (this is usually fine): %v\n", err)
	}

	return spreadsheet.SpreadsheetId, nil
}

// Add new type for export result
type ExportResult struct {
	SpreadsheetID string
	URL           string
	Error         error
}

func (s *Storage) ExportToSheets(report *models.ResearchReport, spreadsheetID string) ExportResult {
	sheetsConfig := NewSheetsConfig(s.dataDir)

	// Load credentials
	credentials, err := os.ReadFile(sheetsConfig.CredentialsFile)
	if err != nil {
		return ExportResult{Error: fmt.Errorf("unable to read credentials file: %v", err)}
	}

	// Configure the Google Sheets client with additional scopes
	oauthConfig, err := google.JWTConfigFromJSON(credentials,
		sheets.SpreadsheetsScope,
		drive.DriveScope,
		drive.DriveFileScope,
	)
	if err != nil {
		return ExportResult{Error: fmt.Errorf("unable to parse credentials: %v", err)}
	}

	// Create clients
	client := oauthConfig.Client(context.Background())
	sheetsService, err := sheets.New(client)
	if err != nil {
		return ExportResult{Error: fmt.Errorf("unable to create sheets client: %v", err)}
	}

	driveService, err := drive.New(client)
	if err != nil {
		return ExportResult{Error: fmt.Errorf("unable to create drive client: %v", err)}
	}

	// If no spreadsheet ID provided, create a new one
	if spreadsheetID == "" {
		spreadsheetID, err = s.createNewSpreadsheet(sheetsService, driveService)
		if err != nil {
			return ExportResult{Error: err}
		}
		// Save the new spreadsheet ID
		if err := s.SaveSpreadsheetID(spreadsheetID); err != nil {
			return ExportResult{Error: fmt.Errorf("failed to save spreadsheet ID: %v", err)}
		}
	}

	values := reportRows(report)

	// Create the request
	range_ := fmt.Sprintf("Sheet1!A1:G%d", len(values))
	valueRange := &sheets.ValueRange{
		Values: values,
	}

	// Update the spreadsheet
	_, err = sheetsService.Spreadsheets.Values.Update(
		spreadsheetID,
		range_,
		valueRange,
	).ValueInputOption("RAW").Do()
	if err != nil {
		return ExportResult{Error: fmt.Errorf("unable to update spreadsheet: %v", err)}
	}

	// Get the spreadsheet to find the sheet ID
	spreadsheet, err := sheetsService.Spreadsheets.Get(spreadsheetID).Do()
	if err != nil {
		return ExportResult{Error: fmt.Errorf("unable to get spreadsheet: %v", err)}
	}

	if len(spreadsheet.Sheets) == 0 {
		return ExportResult{Error: fmt.Errorf("spreadsheet has no sheets")}
	}

	sheetID := spreadsheet.Sheets[0].Properties.SheetId

	// Freeze the first row after the data is populated
	requests := []*sheets.Request{
		{
			UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
				Properties: &sheets.SheetProperties{
					SheetId: sheetID,
					GridProperties: &sheets.GridProperties{
						FrozenRowCount: 1,
					},
				},
				Fields: "gridProperties.frozenRowCount",
			},
		},
	}

	batchUpdate := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}

	_, err = sheetsService.Spreadsheets.BatchUpdate(spreadsheetID, batchUpdate).Do()
	if err != nil {
		return ExportResult{Error: fmt.Errorf("unable to freeze first row: %v", err)}
	}

	// Generate the spreadsheet URL
	spreadsheetURL := fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit", spreadsheetID)

	return ExportResult{
		SpreadsheetID: spreadsheetID,
		URL:           spreadsheetURL,
		Error:         nil,
	}
}

// reportRows flattens a report into spreadsheet rows. The first row is
// the header; keywords keep their run order.
func reportRows(report *models.ResearchReport) [][]interface{} {
	exportedDate := time.Now().Format("2006-01-02 15:04:05")

	var values [][]interface{}
	// Add header row
	values = append(values, []interface{}{
		"Type", "Keyword", "Title", "Details", "Link", "Published", "Exported Date",
	})

	for _, keyword := range report.Keywords {
		for _, result := range report.SearchResults[keyword] {
			values = append(values, []interface{}{
				"Search Result", keyword, result.Title, result.Snippet, result.Link, "", exportedDate,
			})
		}
	}

	for _, idea := range report.Ideas {
		details := idea.Description
		if len(idea.KeyPoints) > 0 {
			details += "\n" + strings.Join(idea.KeyPoints, "\n")
		}
		values = append(values, []interface{}{
			"Content Idea", "", idea.Title, details, "", "", exportedDate,
		})
	}

	for _, platform := range models.Platforms() {
		for i, post := range report.Posts[platform] {
			values = append(values, []interface{}{
				platform.DisplayName() + " Post", "", fmt.Sprintf("Post %d", i+1), post.Body, "", "", exportedDate,
			})
		}
	}

	for _, article := range report.News {
		values = append(values, []interface{}{
			"News Article", "", article.Title, article.Description, article.URL, article.PublishedAt, exportedDate,
		})
	}

	return values
}

func (s *Storage) SaveSpreadsheetID(id string) error {
	path := filepath.Join(s.dataDir, "spreadsheet.json")
	data := map[string]string{"id": id}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling spreadsheet ID: %v", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("error saving spreadsheet ID: %v", err)
	}

	return nil
}

func (s *Storage) LoadSpreadsheetID() (string, error) {
	path := filepath.Join(s.dataDir, "spreadsheet.json")

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading spreadsheet ID: %v", err)
	}

	var config map[string]string
	if err := json.Unmarshal(data, &config); err != nil {
		return "", fmt.Errorf("error parsing spreadsheet ID: %v", err)
	}

	return config["id"], nil
}
