package fda

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultBaseURL is the openFDA drug adverse event endpoint.
const DefaultBaseURL = "https://api.fda.gov/drug/event.json"

// defaultLimit caps how many reports a single lookup returns; five gives
// a snapshot without flooding the chat reply.
const defaultLimit = 5

// Client fetches adverse event reports from the openFDA API. The
// embedded HTTP client carries a fixed timeout so a slow upstream cannot
// stall a chat request indefinitely.
type Client struct {
	baseURL    string
	limit      int
	httpClient *http.Client
}

// NewClient constructs an openFDA client. The base URL can be overridden
// through the OPENFDA_API_URL environment variable, which the tests and
// self-hosted mirrors use.
func NewClient() *Client {
	baseURL := os.Getenv("OPENFDA_API_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		limit:   defaultLimit,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// eventResponse mirrors the slice of the openFDA payload we read. Fields
// not listed here are ignored by the decoder.
type eventResponse struct {
	Results []struct {
		SafetyReportID string `json:"safetyreportid"`
		Patient        struct {
			Reaction []struct {
				ReactionMedDRAPT string `json:"reactionmeddrapt"`
			} `json:"reaction"`
		} `json:"patient"`
	} `json:"results"`
}

// Fetch returns adverse event summaries for drug in the form
// "Report <id>: <reaction1>, <reaction2>, ...". A missing report ID
// renders as "N/A" and a missing reaction term as "Unknown". Any
// transport, status or decode problem is returned as an error; callers
// are expected to treat errors the same as an empty result.
func (c *Client) Fetch(ctx context.Context, drug string) ([]string, error) {
	q := url.Values{}
	q.Set("search", fmt.Sprintf("patient.drug.medicinalproduct:%q", drug))
	q.Set("limit", fmt.Sprint(c.limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching adverse events: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openFDA returned status %d", resp.StatusCode)
	}

	var payload eventResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding openFDA response: %w", err)
	}
	if len(payload.Results) == 0 {
		return nil, fmt.Errorf("no results for %q", drug)
	}

	events := make([]string, 0, len(payload.Results))
	for _, result := range payload.Results {
		id := result.SafetyReportID
		if id == "" {
			id = "N/A"
		}
		reactions := make([]string, 0, len(result.Patient.Reaction))
		for _, r := range result.Patient.Reaction {
			term := r.ReactionMedDRAPT
			if term == "" {
				term = "Unknown"
			}
			reactions = append(reactions, term)
		}
		events = append(events, fmt.Sprintf("Report %s: %s", id, strings.Join(reactions, ", ")))
	}
	return events, nil
}
