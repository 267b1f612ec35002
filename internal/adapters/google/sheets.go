package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"studiosessions/internal/domain"
)

const sheetsBaseURL = "https://sheets.googleapis.com/v4"

type sheetsClient struct {
	client        *http.Client
	baseURL       string
	spreadsheetID string
	sheetName     string
}

// NewSheetsClient returns a SheetAppender that appends rows to columns A:E of
// the named sheet via the Google Sheets v4 API.
func NewSheetsClient(client *http.Client, spreadsheetID, sheetName string) domain.SheetAppender {
	if client == nil {
		client = http.DefaultClient
	}
	return &sheetsClient{client: client, baseURL: sheetsBaseURL, spreadsheetID: spreadsheetID, sheetName: sheetName}
}

// appendBody is the values.append request payload.
type appendBody struct {
	Values [][]any `json:"values"`
}

func (c *sheetsClient) AppendRow(ctx context.Context, row []any) error {
	body, err := json.Marshal(appendBody{Values: [][]any{row}})
	if err != nil {
		return fmt.Errorf("failed to encode sheet row: %w", err)
	}

	// USER_ENTERED lets the sheet coerce cell types, matching manual entry.
	rangeRef := url.PathEscape(c.sheetName + "!A:E")
	endpoint := fmt.Sprintf("%s/spreadsheets/%s/values/%s:append?valueInputOption=USER_ENTERED",
		c.baseURL, url.PathEscape(c.spreadsheetID), rangeRef)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to append sheet row: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sheets api returned status: %d", resp.StatusCode)
	}
	return nil
}
