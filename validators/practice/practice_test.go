package practiceValidator

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func submitApp() *fiber.App {
	app := fiber.New()
	app.Post("/submit", SubmitSession(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) int {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp.StatusCode
}

func TestSubmitSessionAcceptsDistinctAnswers(t *testing.T) {
	app := submitApp()
	code := postJSON(t, app, "/submit", fiber.Map{
		"reference_id": "ref-1",
		"answers": []fiber.Map{
			{"question_id": 5, "selected_option": "A"},
			{"question_id": 6, "selected_option": "C"},
		},
	})
	if code != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", code, fiber.StatusOK)
	}
}

func TestSubmitSessionRejectsDuplicateQuestionIDs(t *testing.T) {
	app := submitApp()
	// Answering the same question twice would double-count it in the
	// session aggregates.
	code := postJSON(t, app, "/submit", fiber.Map{
		"reference_id": "ref-1",
		"answers": []fiber.Map{
			{"question_id": 5, "selected_option": "A"},
			{"question_id": 5, "selected_option": "B"},
		},
	})
	if code != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", code, fiber.StatusUnprocessableEntity)
	}
}

func TestSubmitSessionRejectsUnknownOption(t *testing.T) {
	app := submitApp()
	code := postJSON(t, app, "/submit", fiber.Map{
		"reference_id": "ref-1",
		"answers": []fiber.Map{
			{"question_id": 5, "selected_option": "E"},
		},
	})
	if code != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", code, fiber.StatusUnprocessableEntity)
	}
}
