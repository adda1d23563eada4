// Package audit records authentication and account events to the action log.
package audit

import (
	"context"
	"encoding/json"

	"github.com/EliandyDumortier/Cycling-App/internal/logger"
	"github.com/EliandyDumortier/Cycling-App/internal/models"
	"github.com/EliandyDumortier/Cycling-App/internal/repository"
)

// Actions recorded by the API.
const (
	ActionLoginSuccess = "login_success"
	ActionLoginFailure = "login_failure"
	ActionUserCreated  = "user_created"
)

// Source identifies this service in shared audit tables.
const Source = "cycling-api"

// LogAction writes one audit entry. Failures are logged and swallowed: a
// broken audit trail must never fail the request that triggered it.
func LogAction(ctx context.Context, repo repository.ActionLogRepository, action string, userID *int64, details map[string]any) error {
	var encoded string
	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			logger.Warningf("audit: failed to encode details for %s: %v", action, err)
		} else {
			encoded = string(raw)
		}
	}

	entry := &models.ActionLog{
		Action:  action,
		UserID:  userID,
		Source:  Source,
		Details: encoded,
	}
	if err := repo.Create(ctx, entry); err != nil {
		logger.Warningf("audit: failed to record %s: %v", action, err)
		return err
	}
	return nil
}
