package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quietfield/habitloop/internal/apperr"
	"github.com/quietfield/habitloop/internal/models"
)

func jsonServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestVerifyTokenSuccess(t *testing.T) {
	var gotAuth string
	server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]uint{"userId": 42})
	})

	userID, err := NewAuthClient(server.URL).VerifyToken(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("verify token failed: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user 42, got %d", userID)
	}
	if gotAuth != "Bearer abc123" {
		t.Fatalf("expected bearer header forwarded, got %q", gotAuth)
	}
}

func TestVerifyTokenRejectionIsUnauthorized(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized} {
		server := jsonServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		})

		_, err := NewAuthClient(server.URL).VerifyToken(context.Background(), "bad")
		if apperr.KindOf(err) != apperr.KindUnauthorized {
			t.Fatalf("status %d: expected unauthorized kind, got %v", status, err)
		}
	}
}

func TestVerifyTokenOutageIsUpstream(t *testing.T) {
	server := jsonServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := NewAuthClient(server.URL).VerifyToken(context.Background(), "abc")
	if apperr.KindOf(err) != apperr.KindUpstream {
		t.Fatalf("expected upstream kind on 500, got %v", err)
	}

	// Transport failure against a closed listener.
	dead := httptest.NewServer(http.NotFoundHandler())
	url := dead.URL
	dead.Close()
	_, err = NewAuthClient(url).VerifyToken(context.Background(), "abc")
	if apperr.KindOf(err) != apperr.KindUpstream {
		t.Fatalf("expected upstream kind on transport failure, got %v", err)
	}
}

func TestCreateHabitRoundtrip(t *testing.T) {
	server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/habits" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var payload createHabitRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Habit{ID: 5, UserID: payload.UserID, Name: payload.Name, Frequency: payload.Frequency})
	})

	habit, err := NewHabitClient(server.URL).CreateHabit(context.Background(), 3, "Read", "daily")
	if err != nil {
		t.Fatalf("create habit failed: %v", err)
	}
	if habit.ID != 5 || habit.UserID != 3 || habit.Name != "Read" {
		t.Fatalf("unexpected habit: %+v", habit)
	}
}

func TestListCompletionsBuildsRangeQuery(t *testing.T) {
	var gotQuery string
	server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]models.CompletionLog{})
	})

	_, err := NewHabitClient(server.URL).ListCompletions(context.Background(), 7, "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("list completions failed: %v", err)
	}
	if gotQuery != "from=2024-01-01&to=2024-01-31&userId=7" {
		t.Fatalf("unexpected query: %q", gotQuery)
	}
}

func TestListCompletionsOmitsEmptyRange(t *testing.T) {
	var gotQuery string
	server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]models.CompletionLog{})
	})

	_, err := NewHabitClient(server.URL).ListCompletions(context.Background(), 7, "", "")
	if err != nil {
		t.Fatalf("list completions failed: %v", err)
	}
	if gotQuery != "userId=7" {
		t.Fatalf("expected bare userId query, got %q", gotQuery)
	}
}

func TestHabitClientErrorsAreUpstream(t *testing.T) {
	server := jsonServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	client := NewHabitClient(server.URL)

	if _, err := client.ListHabits(context.Background(), 1); apperr.KindOf(err) != apperr.KindUpstream {
		t.Fatalf("list habits: expected upstream kind, got %v", err)
	}
	if _, err := client.CompleteHabit(context.Background(), 1, "2024-01-10"); apperr.KindOf(err) != apperr.KindUpstream {
		t.Fatalf("complete habit: expected upstream kind, got %v", err)
	}
}

func TestStatsClientDailySummary(t *testing.T) {
	server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/daily-summary" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(models.DailySummary{Date: r.URL.Query().Get("date"), CompletionRate: 50})
	})

	summary, err := NewStatsClient(server.URL).DailySummary(context.Background(), 1, "2024-01-10")
	if err != nil {
		t.Fatalf("daily summary failed: %v", err)
	}
	if summary.Date != "2024-01-10" || summary.CompletionRate != 50 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestQuoteClientRoundtripAndOutage(t *testing.T) {
	server := jsonServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(models.Quote{Text: "Stay curious.", Author: "Ada"})
	})

	quote, err := NewQuoteClient(server.URL).GetQuote(context.Background())
	if err != nil {
		t.Fatalf("get quote failed: %v", err)
	}
	if quote.Text != "Stay curious." {
		t.Fatalf("unexpected quote: %+v", quote)
	}

	dead := httptest.NewServer(http.NotFoundHandler())
	url := dead.URL
	dead.Close()
	if _, err := NewQuoteClient(url).GetQuote(context.Background()); apperr.KindOf(err) != apperr.KindUpstream {
		t.Fatalf("expected upstream kind on transport failure, got %v", err)
	}
}
