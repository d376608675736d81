package services

import (
	"context"
	"fmt"

	"github.com/englishlessons/backend/internal/auth"
	"github.com/englishlessons/backend/internal/models"
)

// EnrollmentRepository defines methods for enrollment ledger data access
type EnrollmentRepository interface {
	// Create inserts a new enrollment; returns models.ErrDuplicateEnrollment
	// when the (user, course) pair is already enrolled
	Create(ctx context.Context, enrollment *models.Enrollment) error
	// GetByID retrieves an enrollment by ID
	GetByID(ctx context.Context, id int) (*models.Enrollment, error)
	// MarkPaid transitions an enrollment to paid; idempotent
	MarkPaid(ctx context.Context, id int) error
	// HasActive checks whether the user holds a usable enrollment for the course
	HasActive(ctx context.Context, userID, courseID int) (bool, error)
	// GetByUserID retrieves all enrollments for a user
	GetByUserID(ctx context.Context, userID int) ([]models.EnrollmentListItem, error)
}

// EnrollmentCourseRepository defines the course lookups the enrollment
// ledger needs
type EnrollmentCourseRepository interface {
	// GetByID retrieves a course by ID
	GetByID(ctx context.Context, id int) (*models.Course, error)
}

type enrollmentService struct {
	enrollmentRepo EnrollmentRepository
	courseRepo     EnrollmentCourseRepository
	policy         auth.Policy
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(
	enrollmentRepo EnrollmentRepository,
	courseRepo EnrollmentCourseRepository,
	policy auth.Policy,
) *enrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		policy:         policy,
	}
}

// Enroll registers the actor in a course. Free trial enrollments are
// usable immediately; paid enrollments start pending and require the
// payment coordinator to confirm before access is granted.
func (s *enrollmentService) Enroll(ctx context.Context, actor auth.Actor, courseID int, enrollmentType models.EnrollmentType) (*models.Enrollment, error) {
	if err := s.policy.Allow(actor, auth.ActionEnroll, 0); err != nil {
		return nil, err
	}

	if !models.ValidEnrollmentType(enrollmentType) {
		return nil, fmt.Errorf("%q: %w", enrollmentType, models.ErrInvalidEnrollmentType)
	}

	// Make sure the course exists before writing the ledger
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	enrollment := &models.Enrollment{
		UserID:         actor.UserID,
		CourseID:       courseID,
		EnrollmentType: enrollmentType,
		Status:         models.EnrollmentStatusPending,
	}

	// The insert itself is the uniqueness check; two concurrent enroll
	// requests for the same pair cannot both succeed
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	return enrollment, nil
}

// HasAccess reports whether the user may use the course's lessons:
// an enrollment exists and is a free trial or confirmed paid.
func (s *enrollmentService) HasAccess(ctx context.Context, userID, courseID int) (bool, error) {
	return s.enrollmentRepo.HasActive(ctx, userID, courseID)
}

// ListForUser retrieves the actor's enrollments for the dashboard
func (s *enrollmentService) ListForUser(ctx context.Context, actor auth.Actor) ([]models.EnrollmentListItem, error) {
	if err := s.policy.Allow(actor, auth.ActionViewEnrollments, 0); err != nil {
		return nil, err
	}

	return s.enrollmentRepo.GetByUserID(ctx, actor.UserID)
}
