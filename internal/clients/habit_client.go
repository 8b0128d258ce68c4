package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quietfield/habitloop/internal/apperr"
	"github.com/quietfield/habitloop/internal/models"
)

// HabitClient talks to the habit store.
type HabitClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHabitClient(baseURL string) *HabitClient {
	return &HabitClient{baseURL: baseURL, httpClient: newHTTPClient(DefaultTimeout)}
}

type createHabitRequest struct {
	UserID    uint   `json:"userId"`
	Name      string `json:"name"`
	Frequency string `json:"frequency"`
}

type completeHabitRequest struct {
	Date string `json:"date"`
}

func (client *HabitClient) CreateHabit(ctx context.Context, userID uint, name string, frequency string) (models.Habit, error) {
	payload := createHabitRequest{UserID: userID, Name: name, Frequency: frequency}

	var habit models.Habit
	status, err := doJSON(ctx, client.httpClient, http.MethodPost, client.baseURL+"/habits", nil, payload, &habit)
	if err != nil {
		return models.Habit{}, apperr.Upstream("habit service unavailable", err)
	}
	if status < 200 || status > 299 {
		return models.Habit{}, apperr.Upstream("habit service unavailable", statusError("habit", status))
	}
	return habit, nil
}

func (client *HabitClient) ListHabits(ctx context.Context, userID uint) ([]models.Habit, error) {
	query := url.Values{}
	query.Set("userId", fmt.Sprint(userID))

	habits := make([]models.Habit, 0)
	status, err := doJSON(ctx, client.httpClient, http.MethodGet, client.baseURL+"/habits?"+query.Encode(), nil, nil, &habits)
	if err != nil {
		return nil, apperr.Upstream("habit service unavailable", err)
	}
	if status < 200 || status > 299 {
		return nil, apperr.Upstream("habit service unavailable", statusError("habit", status))
	}
	return habits, nil
}

func (client *HabitClient) CompleteHabit(ctx context.Context, habitID uint, day string) (models.CompletionReceipt, error) {
	endpoint := fmt.Sprintf("%s/habits/%d/completions", client.baseURL, habitID)

	var receipt models.CompletionReceipt
	status, err := doJSON(ctx, client.httpClient, http.MethodPost, endpoint, nil, completeHabitRequest{Date: day}, &receipt)
	if err != nil {
		return models.CompletionReceipt{}, apperr.Upstream("habit service unavailable", err)
	}
	if status < 200 || status > 299 {
		return models.CompletionReceipt{}, apperr.Upstream("habit service unavailable", statusError("habit", status))
	}
	return receipt, nil
}

func (client *HabitClient) ListCompletions(ctx context.Context, userID uint, from string, to string) ([]models.CompletionLog, error) {
	query := url.Values{}
	query.Set("userId", fmt.Sprint(userID))
	if from != "" {
		query.Set("from", from)
	}
	if to != "" {
		query.Set("to", to)
	}

	logs := make([]models.CompletionLog, 0)
	status, err := doJSON(ctx, client.httpClient, http.MethodGet, client.baseURL+"/habit-logs?"+query.Encode(), nil, nil, &logs)
	if err != nil {
		return nil, apperr.Upstream("habit service unavailable", err)
	}
	if status < 200 || status > 299 {
		return nil, apperr.Upstream("habit service unavailable", statusError("habit", status))
	}
	return logs, nil
}

func statusError(service string, status int) error {
	return fmt.Errorf("%s service returned status %d", service, status)
}
