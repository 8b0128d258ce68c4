package clients

import (
	"context"
	"net/http"

	"github.com/quietfield/habitloop/internal/apperr"
	"github.com/quietfield/habitloop/internal/models"
)

// QuoteClient talks to the quote provider. The provider itself never fails a
// quote lookup (it has a static fallback); errors here mean the provider
// process was unreachable.
type QuoteClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewQuoteClient(baseURL string) *QuoteClient {
	return &QuoteClient{baseURL: baseURL, httpClient: newHTTPClient(DefaultTimeout)}
}

func (client *QuoteClient) GetQuote(ctx context.Context) (models.Quote, error) {
	var quote models.Quote
	status, err := doJSON(ctx, client.httpClient, http.MethodGet, client.baseURL+"/quote", nil, nil, &quote)
	if err != nil {
		return models.Quote{}, apperr.Upstream("quote service unavailable", err)
	}
	if status < 200 || status > 299 {
		return models.Quote{}, apperr.Upstream("quote service unavailable", statusError("quote", status))
	}
	return quote, nil
}
