package route

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	helper "pteguide_backend/internals/helpers"
	"pteguide_backend/internals/testutils"
)

func TestToggleReviewWithoutSession(t *testing.T) {
	db := testutils.NewDB(t)
	helper.InitSessions()

	app := fiber.New()
	SpellingRoutes(app, db)

	req := httptest.NewRequest("POST", "/spelling/toggle-review",
		strings.NewReader(`{"mistake_id":1}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	// a JSON action must answer in the {success:false} shape, never redirect
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "" {
		t.Errorf("unexpected redirect to %q", loc)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	if body["error"] != "Please login to track spelling practice" {
		t.Errorf("error = %q, want the login prompt", body["error"])
	}
}
