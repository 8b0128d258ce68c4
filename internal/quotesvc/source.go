// Package quotesvc adapts a public quote API into the suite's one-call
// contract: GetQuote always yields a quote, even with the upstream down.
package quotesvc

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/quietfield/habitloop/internal/models"
)

const (
	DefaultUpstreamURL = "https://zenquotes.io/api/random"

	fallbackText   = "Small consistent habits create big changes."
	fallbackAuthor = "Habit Tracker"

	blankText   = "Keep going. Keep growing."
	blankAuthor = "Unknown"
)

// Source fetches quotes from a zenquotes-style upstream (a JSON array of
// {"q": ..., "a": ...} objects).
type Source struct {
	upstreamURL string
	httpClient  *http.Client
}

func NewSource(upstreamURL string) *Source {
	if strings.TrimSpace(upstreamURL) == "" {
		upstreamURL = DefaultUpstreamURL
	}
	return &Source{
		upstreamURL: upstreamURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

type upstreamQuote struct {
	Text   string `json:"q"`
	Author string `json:"a"`
}

// Fetch never fails: an unreachable upstream or an unusable payload yields
// the static fallback quote.
func (source *Source) Fetch(ctx context.Context) models.Quote {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, source.upstreamURL, nil)
	if err != nil {
		return fallbackQuote()
	}

	response, err := source.httpClient.Do(request)
	if err != nil {
		log.Printf("quotesvc: upstream fetch failed: %v", err)
		return fallbackQuote()
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		log.Printf("quotesvc: upstream returned status %d", response.StatusCode)
		return fallbackQuote()
	}

	var payload []upstreamQuote
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil || len(payload) == 0 {
		log.Printf("quotesvc: unusable upstream payload: %v", err)
		return fallbackQuote()
	}

	quote := models.Quote{
		Text:   strings.TrimSpace(payload[0].Text),
		Author: strings.TrimSpace(payload[0].Author),
	}
	if quote.Text == "" {
		quote.Text = blankText
	}
	if quote.Author == "" {
		quote.Author = blankAuthor
	}
	return quote
}

func fallbackQuote() models.Quote {
	return models.Quote{Text: fallbackText, Author: fallbackAuthor}
}
