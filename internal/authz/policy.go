// Package authz holds the static role allow-lists for every protected
// operation. Authorization is plain set membership: no hierarchy, no
// inheritance. A role not listed for an operation is denied, admin included.
package authz

import (
	"errors"

	"github.com/EliandyDumortier/Cycling-App/internal/models"
)

// ErrForbidden is returned when the caller's role is not on the operation's
// allow-list.
var ErrForbidden = errors.New("operation not allowed for role")

// Operation names every role-gated action in the API.
type Operation string

const (
	OpAthleteCreate Operation = "athletes:create"
	OpAthleteList   Operation = "athletes:list"
	OpAthleteUpdate Operation = "athletes:update"
	OpAthleteDelete Operation = "athletes:delete"

	OpPerformanceCreate Operation = "performances:create"
	OpPerformanceList   Operation = "performances:list"
	OpPerformanceUpdate Operation = "performances:update"
	OpPerformanceDelete Operation = "performances:delete"

	OpStatsRead Operation = "stats:read"
)

// allowLists is the single source of truth for endpoint permissions.
// Performance mutations list coach only, mirroring the deployed policy;
// athlete-record mutations list coach and admin.
var allowLists = map[Operation][]models.Role{
	OpAthleteCreate: {models.RoleCoach, models.RoleAdmin},
	OpAthleteList:   {models.RoleAthlete, models.RoleCoach, models.RoleAdmin},
	OpAthleteUpdate: {models.RoleCoach, models.RoleAdmin},
	OpAthleteDelete: {models.RoleCoach, models.RoleAdmin},

	OpPerformanceCreate: {models.RoleCoach},
	OpPerformanceList:   {models.RoleAthlete, models.RoleCoach, models.RoleAdmin},
	OpPerformanceUpdate: {models.RoleCoach},
	OpPerformanceDelete: {models.RoleCoach},

	OpStatsRead: {models.RoleAthlete, models.RoleCoach, models.RoleAdmin},
}

// registrationTargets maps a creator role to the account roles it may
// create. Self-registration (no authenticated creator) is handled by the
// account service and is limited to athlete accounts.
var registrationTargets = map[models.Role][]models.Role{
	models.RoleCoach: {models.RoleAthlete},
	models.RoleAdmin: {models.RoleCoach},
}

// Authorize checks role against the allow-list for op. Unknown operations
// deny everything.
func Authorize(role models.Role, op Operation) error {
	for _, allowed := range allowLists[op] {
		if role == allowed {
			return nil
		}
	}
	return ErrForbidden
}

// CanCreateRole reports whether a creator with the given role may register
// an account with the target role.
func CanCreateRole(creator, target models.Role) bool {
	for _, allowed := range registrationTargets[creator] {
		if target == allowed {
			return true
		}
	}
	return false
}
