package services

import (
	"context"
	"fmt"
	"time"

	"github.com/englishlessons/backend/internal/auth"
	"github.com/englishlessons/backend/internal/models"
)

const scheduleLayout = "2006-01-02T15:04"

// BookingRepository defines methods for lesson booking data access
type BookingRepository interface {
	// Create inserts a new booking; returns models.ErrDuplicateBooking
	// when the (user, lesson, lesson type) combination is already booked
	Create(ctx context.Context, booking *models.LessonBooking) error
	// GetByID retrieves a booking by ID
	GetByID(ctx context.Context, id int) (*models.LessonBooking, error)
	// GetByUserID retrieves all bookings for a user
	GetByUserID(ctx context.Context, userID int) ([]models.BookingListItem, error)
}

// BookingLessonRepository defines the lesson lookups the booking flow needs
type BookingLessonRepository interface {
	// GetByID retrieves a lesson by ID
	GetByID(ctx context.Context, id int) (*models.Lesson, error)
	// GetByTeacherID retrieves all lessons taught by the teacher
	GetByTeacherID(ctx context.Context, teacherID int) ([]models.TeacherLessonItem, error)
	// MarkCompleted flips a lesson to completed; idempotent
	MarkCompleted(ctx context.Context, id int) error
}

// AccessChecker gates bookings on the actor holding a usable enrollment
type AccessChecker interface {
	HasAccess(ctx context.Context, userID, courseID int) (bool, error)
}

type bookingService struct {
	bookingRepo BookingRepository
	lessonRepo  BookingLessonRepository
	access      AccessChecker
	policy      auth.Policy
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo BookingRepository,
	lessonRepo BookingLessonRepository,
	access AccessChecker,
	policy auth.Policy,
) *bookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		lessonRepo:  lessonRepo,
		access:      access,
		policy:      policy,
	}
}

// Book reserves a lesson slot for the actor. The actor must hold a free
// trial or paid enrollment in the lesson's course, and the same lesson
// can be booked at most once per lesson type.
func (s *bookingService) Book(ctx context.Context, actor auth.Actor, lessonID int, req models.CreateBookingRequest) (*models.LessonBooking, error) {
	if err := s.policy.Allow(actor, auth.ActionBookLesson, 0); err != nil {
		return nil, err
	}

	if !models.ValidLessonType(req.LessonType) {
		return nil, fmt.Errorf("%q: %w", req.LessonType, models.ErrInvalidLessonType)
	}

	schedule, err := parseSchedule(req.Schedule)
	if err != nil {
		return nil, err
	}

	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	hasAccess, err := s.access.HasAccess(ctx, actor.UserID, lesson.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check enrollment: %w", err)
	}
	if !hasAccess {
		return nil, fmt.Errorf("no active enrollment for course %d: %w", lesson.CourseID, models.ErrForbidden)
	}

	booking := &models.LessonBooking{
		UserID:     actor.UserID,
		LessonID:   lessonID,
		CourseID:   lesson.CourseID,
		LessonType: req.LessonType,
		Schedule:   schedule,
		Status:     models.BookingStatusBooked,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	// Read the stored row back so the response carries the schedule
	// exactly as persisted
	stored, err := s.bookingRepo.GetByID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	return stored, nil
}

// ListForUser retrieves the actor's bookings
func (s *bookingService) ListForUser(ctx context.Context, actor auth.Actor) ([]models.BookingListItem, error) {
	if err := s.policy.Allow(actor, auth.ActionViewBookings, 0); err != nil {
		return nil, err
	}

	return s.bookingRepo.GetByUserID(ctx, actor.UserID)
}

// CompleteLesson marks a lesson as done. Only the lesson's teacher
// or an admin may complete it, and a completed lesson stays completed.
func (s *bookingService) CompleteLesson(ctx context.Context, actor auth.Actor, lessonID int) error {
	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return fmt.Errorf("failed to get lesson: %w", err)
	}

	if err := s.policy.Allow(actor, auth.ActionCompleteLesson, lesson.TeacherID); err != nil {
		return err
	}

	return s.lessonRepo.MarkCompleted(ctx, lessonID)
}

// LessonsForTeacher retrieves the actor's own teaching schedule
func (s *bookingService) LessonsForTeacher(ctx context.Context, actor auth.Actor) ([]models.TeacherLessonItem, error) {
	if err := s.policy.Allow(actor, auth.ActionViewOwnLessons, 0); err != nil {
		return nil, err
	}

	return s.lessonRepo.GetByTeacherID(ctx, actor.UserID)
}

func parseSchedule(raw string) (time.Time, error) {
	if t, err := time.Parse(scheduleLayout, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%q: %w", raw, models.ErrInvalidSchedule)
}
