package sheets

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Coordinates identifies the exact slice of a spreadsheet a draft board
// lives in. The cache layer keys on the full triple.
type Coordinates struct {
	SpreadsheetID string
	GID           string // sheet tab id within the spreadsheet
	Range         string // A1-style cell range, e.g. "A1:V24"; empty for the whole tab
}

func (c Coordinates) Key() string {
	return fmt.Sprintf("%s:%s:%s", c.SpreadsheetID, c.GID, c.Range)
}

// Client fetches cell grids from public Google Sheets using CSV export
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL: "https://docs.google.com",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a fake server
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// FetchGrid fetches the cell range as a rectangular grid of strings. Ragged
// CSV rows are padded with empty cells so every row has the same width.
func (c *Client) FetchGrid(coords Coordinates) ([][]string, error) {
	u := fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv&gid=%s",
		c.baseURL, url.PathEscape(coords.SpreadsheetID), url.QueryEscape(coords.GID))
	if coords.Range != "" {
		u += "&range=" + url.QueryEscape(coords.Range)
	}

	resp, err := c.httpClient.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code fetching sheet: %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1 // sheets trim trailing empty cells per row

	var grid [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		grid = append(grid, record)
	}

	return padGrid(grid), nil
}

// padGrid widens short rows with empty strings so parsers can index columns
// without bounds checks against ragged data
func padGrid(grid [][]string) [][]string {
	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range grid {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			grid[i] = padded
		}
	}
	return grid
}
