package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quietfield/habitloop/internal/apperr"
	"github.com/quietfield/habitloop/internal/models"
)

// StatsClient talks to the metrics aggregator.
type StatsClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewStatsClient(baseURL string) *StatsClient {
	return &StatsClient{baseURL: baseURL, httpClient: newHTTPClient(DefaultTimeout)}
}

func (client *StatsClient) DailySummary(ctx context.Context, userID uint, day string) (models.DailySummary, error) {
	query := url.Values{}
	query.Set("userId", fmt.Sprint(userID))
	query.Set("date", day)

	var summary models.DailySummary
	status, err := doJSON(ctx, client.httpClient, http.MethodGet, client.baseURL+"/daily-summary?"+query.Encode(), nil, nil, &summary)
	if err != nil {
		return models.DailySummary{}, apperr.Upstream("stats service unavailable", err)
	}
	if status < 200 || status > 299 {
		return models.DailySummary{}, apperr.Upstream("stats service unavailable", statusError("stats", status))
	}
	return summary, nil
}
