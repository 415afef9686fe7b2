package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/timetrackpro/internal/db"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

// testNow is a Wednesday in March 2026, a month with 22 weekdays.
var testNow = time.Date(2026, time.March, 18, 10, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "timetrackpro-api-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(database)
	})

	handler, err := NewHandler(database, testSecretKey, time.UTC, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	handler.now = func() time.Time { return testNow }

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler
}

func doRequest(t *testing.T, app *fiber.App, method string, path string, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func expectStatus(t *testing.T, response *http.Response, status int) {
	t.Helper()
	if response.StatusCode != status {
		payload, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", status, response.StatusCode, string(payload))
	}
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func readAPIError(t *testing.T, response *http.Response) map[string]string {
	t.Helper()
	payload := map[string]string{}
	decodeBody(t, response, &payload)
	return payload
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// registerUser creates an account and returns its bearer token.
func registerUser(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	response := doRequest(t, app, http.MethodPost, "/api/auth/register", "", credentialsInput{Username: username, Password: "StrongPass1"})
	expectStatus(t, response, http.StatusCreated)

	var payload struct {
		Token string `json:"token"`
	}
	decodeBody(t, response, &payload)
	if payload.Token == "" {
		t.Fatal("expected token in register response")
	}
	return payload.Token
}

type entryResponse struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	HourlyRate  int    `json:"hourlyRate"`
	Notes       string `json:"notes"`
	MoodRating  *int   `json:"moodRating"`
	EnergyLevel *int   `json:"energyLevel"`
}

func createEntry(t *testing.T, app *fiber.App, token string, payload timeEntryPayload) entryResponse {
	t.Helper()

	response := doRequest(t, app, http.MethodPost, "/api/time-entries", token, payload)
	expectStatus(t, response, http.StatusCreated)
	var entry entryResponse
	decodeBody(t, response, &entry)
	return entry
}
