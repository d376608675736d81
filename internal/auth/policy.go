package auth

import (
	"github.com/englishlessons/backend/internal/models"
)

// Action identifies an operation subject to authorization
type Action string

// Actions checked by the policy
const (
	ActionEnroll          Action = "enroll"
	ActionViewEnrollments Action = "view_enrollments"
	ActionInitiatePayment Action = "initiate_payment"
	ActionBookLesson      Action = "book_lesson"
	ActionViewBookings    Action = "view_bookings"
	ActionCompleteLesson  Action = "complete_lesson"
	ActionViewOwnLessons  Action = "view_own_lessons"
)

// Actor is the authenticated caller of an operation
type Actor struct {
	UserID int
	Role   models.Role
}

// Policy decides whether an actor may perform an action, optionally
// scoped to a resource owner. Services check it uniformly before every
// operation instead of branching on roles at each entry point.
type Policy interface {
	// Allow returns models.ErrForbidden when the actor may not perform
	// the action. resourceOwnerID is 0 when the action is not scoped to
	// a particular owner.
	Allow(actor Actor, action Action, resourceOwnerID int) error
}

// requiredRoles maps each action to the role allowed to perform it
var requiredRoles = map[Action]models.Role{
	ActionEnroll:          models.RoleStudent,
	ActionViewEnrollments: models.RoleStudent,
	ActionInitiatePayment: models.RoleStudent,
	ActionBookLesson:      models.RoleStudent,
	ActionViewBookings:    models.RoleStudent,
	ActionCompleteLesson:  models.RoleTeacher,
	ActionViewOwnLessons:  models.RoleTeacher,
}

// RolePolicy is the default Policy: admins may do anything, everyone
// else needs the exact role for the action and, where the action is
// owner-scoped, must be the resource owner.
type RolePolicy struct{}

// NewRolePolicy creates the default role policy
func NewRolePolicy() *RolePolicy {
	return &RolePolicy{}
}

// Allow implements Policy
func (p *RolePolicy) Allow(actor Actor, action Action, resourceOwnerID int) error {
	required, ok := requiredRoles[action]
	if !ok {
		return models.ErrForbidden
	}

	if actor.Role != models.RoleAdmin {
		if actor.Role != required {
			return models.ErrForbidden
		}
		if resourceOwnerID != 0 && resourceOwnerID != actor.UserID {
			return models.ErrForbidden
		}
	}

	return nil
}
