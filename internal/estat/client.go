// Package estat wraps the e-Stat government statistics API (getStatsList).
package estat

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"resty.dev/v3"

	"japanfinagent/internal/fetcher"
)

// Table is one statistics-table search hit.
type Table struct {
	StatsID    string `json:"stats_id,omitempty"`
	Title      string `json:"title,omitempty"`
	SurveyDate string `json:"survey_date,omitempty"`
	GovOrg     string `json:"gov_org,omitempty"`
}

// annotated is the e-Stat convention of {"$": "value", "@code": "..."}.
type annotated struct {
	Value string `json:"$"`
}

// statsListResponse mirrors the getStatsList payload.
type statsListResponse struct {
	GetStatsList struct {
		DatalistInf struct {
			TableInf []struct {
				ID         string      `json:"@id"`
				Title      annotated   `json:"TITLE"`
				GovOrg     annotated   `json:"GOV_ORG"`
				SurveyDate json.Number `json:"SURVEY_DATE"`
			} `json:"TABLE_INF"`
		} `json:"DATALIST_INF"`
	} `json:"GET_STATS_LIST"`
}

// Client calls the e-Stat API.
type Client struct {
	appID  string
	client *resty.Client
}

// NewClient creates an e-Stat client.
func NewClient(appID, baseURL string) *Client {
	return &Client{
		appID:  appID,
		client: fetcher.NewHTTPClient(baseURL),
	}
}

// SearchStats searches statistics tables by keyword.
func (c *Client) SearchStats(ctx context.Context, keyword string, limit int) ([]Table, error) {
	var result statsListResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"appId":      c.appID,
			"searchWord": keyword,
			"limit":      strconv.Itoa(limit),
		}).
		SetResult(&result).
		Get("/getStatsList")

	if err != nil {
		return nil, fmt.Errorf("failed to search e-Stat for %q: %w", keyword, err)
	}
	if !resp.IsSuccess() {
		return nil, fetcher.NewStatusError(resp.StatusCode(), "e-Stat")
	}

	infs := result.GetStatsList.DatalistInf.TableInf
	tables := make([]Table, 0, len(infs))
	for _, inf := range infs {
		tables = append(tables, Table{
			StatsID:    inf.ID,
			Title:      inf.Title.Value,
			SurveyDate: inf.SurveyDate.String(),
			GovOrg:     inf.GovOrg.Value,
		})
	}
	return tables, nil
}
