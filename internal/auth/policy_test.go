package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/englishlessons/backend/internal/models"
)

func TestRolePolicy_Allow(t *testing.T) {
	tests := []struct {
		name            string
		actor           Actor
		action          Action
		resourceOwnerID int
		expectedError   error
	}{
		{
			name:          "student may enroll",
			actor:         Actor{UserID: 1, Role: models.RoleStudent},
			action:        ActionEnroll,
			expectedError: nil,
		},
		{
			name:          "teacher may not enroll",
			actor:         Actor{UserID: 2, Role: models.RoleTeacher},
			action:        ActionEnroll,
			expectedError: models.ErrForbidden,
		},
		{
			name:          "admin bypasses role checks",
			actor:         Actor{UserID: 3, Role: models.RoleAdmin},
			action:        ActionEnroll,
			expectedError: nil,
		},
		{
			name:          "teacher may complete lessons",
			actor:         Actor{UserID: 2, Role: models.RoleTeacher},
			action:        ActionCompleteLesson,
			expectedError: nil,
		},
		{
			name:          "student may not complete lessons",
			actor:         Actor{UserID: 1, Role: models.RoleStudent},
			action:        ActionCompleteLesson,
			expectedError: models.ErrForbidden,
		},
		{
			name:            "owner-scoped action for own resource",
			actor:           Actor{UserID: 1, Role: models.RoleStudent},
			action:          ActionInitiatePayment,
			resourceOwnerID: 1,
			expectedError:   nil,
		},
		{
			name:            "owner-scoped action for someone else's resource",
			actor:           Actor{UserID: 1, Role: models.RoleStudent},
			action:          ActionInitiatePayment,
			resourceOwnerID: 9,
			expectedError:   models.ErrForbidden,
		},
		{
			name:            "admin bypasses ownership checks",
			actor:           Actor{UserID: 3, Role: models.RoleAdmin},
			action:          ActionInitiatePayment,
			resourceOwnerID: 9,
			expectedError:   nil,
		},
		{
			name:            "teacher completes another teacher's lesson",
			actor:           Actor{UserID: 2, Role: models.RoleTeacher},
			action:          ActionCompleteLesson,
			resourceOwnerID: 8,
			expectedError:   models.ErrForbidden,
		},
		{
			name:          "unknown action is denied",
			actor:         Actor{UserID: 3, Role: models.RoleAdmin},
			action:        Action("delete_everything"),
			expectedError: models.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := NewRolePolicy()

			err := policy.Allow(tt.actor, tt.action, tt.resourceOwnerID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
