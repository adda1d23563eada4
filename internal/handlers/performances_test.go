package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/EliandyDumortier/Cycling-App/internal/models"
)

// =============================================================================
// Test Helpers
// =============================================================================

func performanceBody(athleteID int64) map[string]any {
	return map[string]any{
		"vo2max":      65.0,
		"hr_max":      190.0,
		"rf_max":      55.0,
		"cadence_max": 110.0,
		"ppo":         340.0,
		"p1":          140.0,
		"p2":          210.0,
		"p3":          280.0,
		"athlete_id":  athleteID,
	}
}

func (app *testApp) seedAthleteRow(t *testing.T, name string, userID int64) *models.Athlete {
	t.Helper()
	athlete := &models.Athlete{
		Name: name, Gender: models.GenderFemale, Age: 25,
		Weight: 58, Height: 1.68, UserID: userID,
	}
	if err := app.db.Create(athlete).Error; err != nil {
		t.Fatalf("Failed to seed athlete: %v", err)
	}
	return athlete
}

func (app *testApp) performanceCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := app.db.Model(&models.Performance{}).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count performances: %v", err)
	}
	return count
}

// =============================================================================
// Mutation Allow-List Tests
// =============================================================================

func TestPerformanceCreate_RoleGate(t *testing.T) {
	tests := []struct {
		name       string
		role       models.Role
		wantStatus int
	}{
		{name: "coach allowed", role: models.RoleCoach, wantStatus: http.StatusOK},
		// The deployed allow-list names coach only for performance
		// mutations; admin is denied like everyone else.
		{name: "admin denied", role: models.RoleAdmin, wantStatus: http.StatusForbidden},
		{name: "athlete denied", role: models.RoleAthlete, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupTestApp(t)
			owner := app.seedUser(t, "owner@example.com", models.RoleAthlete, "azerty12")
			athlete := app.seedAthleteRow(t, "Ana", owner.ID)
			caller := app.seedUser(t, "caller@example.com", tt.role, "azerty12")

			w := app.doJSON(t, http.MethodPost, "/api/v1/performances", app.tokenFor(t, caller), performanceBody(athlete.ID))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			wantRows := int64(0)
			if tt.wantStatus == http.StatusOK {
				wantRows = 1
			}
			if got := app.performanceCount(t); got != wantRows {
				t.Errorf("performance rows = %d, want %d; deny must precede any insert", got, wantRows)
			}
		})
	}
}

func TestPerformanceCreate_UnknownAthlete(t *testing.T) {
	app := setupTestApp(t)
	coach := app.seedUser(t, "coach@example.com", models.RoleCoach, "azerty12")

	w := app.doJSON(t, http.MethodPost, "/api/v1/performances", app.tokenFor(t, coach), performanceBody(9999))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestPerformanceUpdateDelete_NotFound(t *testing.T) {
	app := setupTestApp(t)
	coach := app.seedUser(t, "coach@example.com", models.RoleCoach, "azerty12")
	token := app.tokenFor(t, coach)

	owner := app.seedUser(t, "owner@example.com", models.RoleAthlete, "azerty12")
	app.seedAthleteRow(t, "Ana", owner.ID)

	w := app.doJSON(t, http.MethodPut, "/api/v1/performances/9999", token, performanceBody(1))
	if w.Code != http.StatusNotFound {
		t.Errorf("update status = %d, want 404", w.Code)
	}

	w = app.doJSON(t, http.MethodDelete, "/api/v1/performances/9999", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("delete status = %d, want 404", w.Code)
	}
}

// =============================================================================
// Row-Level Scoping Tests
// =============================================================================

func TestPerformanceList_AthleteSeesOnlyOwnRows(t *testing.T) {
	app := setupTestApp(t)

	anaUser := app.seedUser(t, "ana@example.com", models.RoleAthlete, "azerty12")
	boUser := app.seedUser(t, "bo@example.com", models.RoleAthlete, "azerty12")
	coach := app.seedUser(t, "coach@example.com", models.RoleCoach, "azerty12")

	ana := app.seedAthleteRow(t, "Ana", anaUser.ID)
	bo := app.seedAthleteRow(t, "Bo", boUser.ID)

	coachToken := app.tokenFor(t, coach)
	for _, athleteID := range []int64{ana.ID, ana.ID, bo.ID} {
		w := app.doJSON(t, http.MethodPost, "/api/v1/performances", coachToken, performanceBody(athleteID))
		if w.Code != http.StatusOK {
			t.Fatalf("seeding performance failed: %d %s", w.Code, w.Body.String())
		}
	}

	decode := func(t *testing.T, body []byte) []models.Performance {
		t.Helper()
		var rows []models.Performance
		if err := json.Unmarshal(body, &rows); err != nil {
			t.Fatalf("Failed to decode listing: %v", err)
		}
		return rows
	}

	t.Run("athlete scoped to own rows", func(t *testing.T) {
		w := app.doJSON(t, http.MethodGet, "/api/v1/performances", app.tokenFor(t, anaUser), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		rows := decode(t, w.Body.Bytes())
		if len(rows) != 2 {
			t.Fatalf("athlete sees %d rows, want 2", len(rows))
		}
		for _, row := range rows {
			if row.AthleteID != ana.ID {
				t.Errorf("foreign row %d leaked into athlete listing", row.ID)
			}
		}
	})

	t.Run("coach sees all rows", func(t *testing.T) {
		w := app.doJSON(t, http.MethodGet, "/api/v1/performances", coachToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if rows := decode(t, w.Body.Bytes()); len(rows) != 3 {
			t.Errorf("coach sees %d rows, want 3", len(rows))
		}
	})

	t.Run("athlete without profile sees empty list", func(t *testing.T) {
		orphan := app.seedUser(t, "new@example.com", models.RoleAthlete, "azerty12")
		w := app.doJSON(t, http.MethodGet, "/api/v1/performances", app.tokenFor(t, orphan), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if rows := decode(t, w.Body.Bytes()); len(rows) != 0 {
			t.Errorf("orphan athlete sees %d rows, want 0", len(rows))
		}
	})
}
