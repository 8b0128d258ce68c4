package habitsvc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/quietfield/habitloop/internal/db"
	"github.com/quietfield/habitloop/internal/models"
	"github.com/quietfield/habitloop/internal/services"
)

type habitFixture struct {
	app   *fiber.App
	repos *db.Repositories
}

func newHabitFixture(t *testing.T) *habitFixture {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "habit.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	repos := db.NewRepositories(database)
	handler := NewHandler(services.NewHabitService(repos.Habits, repos.Completions))

	app := fiber.New()
	RegisterRoutes(app, handler)
	return &habitFixture{app: app, repos: repos}
}

func (fixture *habitFixture) request(t *testing.T, method string, target string, body string) *http.Response {
	t.Helper()
	var request *http.Request
	if body != "" {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	} else {
		request = httptest.NewRequest(method, target, nil)
	}
	response, err := fixture.app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return response
}

func decodeInto(t *testing.T, response *http.Response, out any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func (fixture *habitFixture) createHabit(t *testing.T, userID uint, name string) models.Habit {
	t.Helper()
	payload := fmt.Sprintf(`{"userId":%d,"name":%q,"frequency":"daily"}`, userID, name)
	response := fixture.request(t, fiber.MethodPost, "/habits", payload)
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("create habit: expected 201, got %d", response.StatusCode)
	}
	var habit models.Habit
	decodeInto(t, response, &habit)
	return habit
}

func TestCreateHabitValidation(t *testing.T) {
	fixture := newHabitFixture(t)

	for _, payload := range []string{
		`{}`,
		`{"userId":1,"name":"Read"}`,
		`{"userId":1,"frequency":"daily"}`,
		`{"name":"Read","frequency":"daily"}`,
		`{"userId":1,"name":"  ","frequency":"daily"}`,
	} {
		response := fixture.request(t, fiber.MethodPost, "/habits", payload)
		if response.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("payload %s: expected 400, got %d", payload, response.StatusCode)
		}
	}
}

func TestListHabitsFiltersByOwnerInOrder(t *testing.T) {
	fixture := newHabitFixture(t)

	first := fixture.createHabit(t, 1, "Read")
	second := fixture.createHabit(t, 1, "Run")
	fixture.createHabit(t, 2, "Meditate")

	response := fixture.request(t, fiber.MethodGet, "/habits?userId=1", "")
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	var habits []models.Habit
	decodeInto(t, response, &habits)
	if len(habits) != 2 {
		t.Fatalf("expected 2 habits, got %d", len(habits))
	}
	if habits[0].ID != first.ID || habits[1].ID != second.ID {
		t.Fatalf("expected insertion order %d,%d, got %d,%d", first.ID, second.ID, habits[0].ID, habits[1].ID)
	}
}

func TestListHabitsRequiresUserID(t *testing.T) {
	fixture := newHabitFixture(t)

	response := fixture.request(t, fiber.MethodGet, "/habits", "")
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
}

func TestCompleteHabitIsIdempotentPerDay(t *testing.T) {
	fixture := newHabitFixture(t)
	habit := fixture.createHabit(t, 1, "Read")

	target := fmt.Sprintf("/habits/%d/completions", habit.ID)
	for attempt := 0; attempt < 2; attempt++ {
		response := fixture.request(t, fiber.MethodPost, target, `{"date":"2024-01-10"}`)
		if response.StatusCode != fiber.StatusCreated {
			t.Fatalf("attempt %d: expected 201, got %d", attempt, response.StatusCode)
		}
		var receipt models.CompletionReceipt
		decodeInto(t, response, &receipt)
		if receipt.HabitID != habit.ID || receipt.Date != "2024-01-10" || receipt.Completed != 1 {
			t.Fatalf("unexpected receipt: %+v", receipt)
		}
	}

	count, err := fixture.repos.Completions.CountForDay(habit.ID, "2024-01-10")
	if err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one stored row after repeat completion, got %d", count)
	}
}

func TestCompleteHabitDefaultsToTodayWithoutBody(t *testing.T) {
	fixture := newHabitFixture(t)
	habit := fixture.createHabit(t, 1, "Read")

	response := fixture.request(t, fiber.MethodPost, fmt.Sprintf("/habits/%d/completions", habit.ID), "")
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", response.StatusCode)
	}

	var receipt models.CompletionReceipt
	decodeInto(t, response, &receipt)
	if len(receipt.Date) != len("2006-01-02") {
		t.Fatalf("expected an ISO day, got %q", receipt.Date)
	}
}

func TestCompleteHabitRejectsBadInput(t *testing.T) {
	fixture := newHabitFixture(t)

	response := fixture.request(t, fiber.MethodPost, "/habits/abc/completions", "")
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("non-numeric id: expected 400, got %d", response.StatusCode)
	}

	habit := fixture.createHabit(t, 1, "Read")
	response = fixture.request(t, fiber.MethodPost, fmt.Sprintf("/habits/%d/completions", habit.ID), `{"date":"Jan 10"}`)
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("bad date: expected 400, got %d", response.StatusCode)
	}
}

func TestListCompletionsJoinsOwnershipAndRange(t *testing.T) {
	fixture := newHabitFixture(t)

	mine := fixture.createHabit(t, 1, "Read")
	other := fixture.createHabit(t, 2, "Run")

	for _, day := range []string{"2024-01-05", "2024-01-10", "2024-01-20"} {
		response := fixture.request(t, fiber.MethodPost, fmt.Sprintf("/habits/%d/completions", mine.ID), fmt.Sprintf(`{"date":%q}`, day))
		if response.StatusCode != fiber.StatusCreated {
			t.Fatalf("seed completion %s: got %d", day, response.StatusCode)
		}
	}
	fixture.request(t, fiber.MethodPost, fmt.Sprintf("/habits/%d/completions", other.ID), `{"date":"2024-01-10"}`)

	response := fixture.request(t, fiber.MethodGet, "/habit-logs?userId=1&from=2024-01-05&to=2024-01-10", "")
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	var logs []models.CompletionLog
	decodeInto(t, response, &logs)
	if len(logs) != 2 {
		t.Fatalf("expected 2 rows in inclusive range, got %d", len(logs))
	}
	if logs[0].Date != "2024-01-05" || logs[1].Date != "2024-01-10" {
		t.Fatalf("expected oldest-first order, got %s then %s", logs[0].Date, logs[1].Date)
	}
	for _, row := range logs {
		if row.UserID != 1 || row.Name != "Read" {
			t.Fatalf("expected only owner rows with habit name, got %+v", row)
		}
	}
}

func TestListCompletionsWithoutRangeReturnsAll(t *testing.T) {
	fixture := newHabitFixture(t)
	habit := fixture.createHabit(t, 1, "Read")

	fixture.request(t, fiber.MethodPost, fmt.Sprintf("/habits/%d/completions", habit.ID), `{"date":"2024-01-01"}`)
	fixture.request(t, fiber.MethodPost, fmt.Sprintf("/habits/%d/completions", habit.ID), `{"date":"2024-06-01"}`)

	response := fixture.request(t, fiber.MethodGet, "/habit-logs?userId=1", "")
	var logs []models.CompletionLog
	decodeInto(t, response, &logs)
	if len(logs) != 2 {
		t.Fatalf("expected all rows without range, got %d", len(logs))
	}
}

func TestListCompletionsRejectsMalformedRange(t *testing.T) {
	fixture := newHabitFixture(t)

	response := fixture.request(t, fiber.MethodGet, "/habit-logs?userId=1&from=yesterday", "")
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
}
