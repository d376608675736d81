package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/englishlessons/backend/internal/auth"
	"github.com/englishlessons/backend/internal/models"
)

// mockBookingRepository is a mock implementation of BookingRepository
type mockBookingRepository struct {
	bookings     []models.BookingListItem
	created      *models.LessonBooking
	createErr    error
	getByIDErr   error
	getByUserErr error
	createCalled bool
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *models.LessonBooking) error {
	m.createCalled = true
	if m.createErr != nil {
		return m.createErr
	}
	booking.ID = 20
	stored := *booking
	m.created = &stored
	return nil
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id int) (*models.LessonBooking, error) {
	if m.getByIDErr != nil {
		return nil, m.getByIDErr
	}
	if m.created != nil && m.created.ID == id {
		return m.created, nil
	}
	return nil, models.ErrNotFound
}

func (m *mockBookingRepository) GetByUserID(ctx context.Context, userID int) ([]models.BookingListItem, error) {
	if m.getByUserErr != nil {
		return nil, m.getByUserErr
	}
	return m.bookings, nil
}

// mockLessonRepository is a mock implementation of BookingLessonRepository
type mockLessonRepository struct {
	lesson              *models.Lesson
	lessons             []models.TeacherLessonItem
	getByIDErr          error
	getByTeacherErr     error
	markCompletedErr    error
	markCompletedCalled bool
}

func (m *mockLessonRepository) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	if m.getByIDErr != nil {
		return nil, m.getByIDErr
	}
	return m.lesson, nil
}

func (m *mockLessonRepository) GetByTeacherID(ctx context.Context, teacherID int) ([]models.TeacherLessonItem, error) {
	if m.getByTeacherErr != nil {
		return nil, m.getByTeacherErr
	}
	return m.lessons, nil
}

func (m *mockLessonRepository) MarkCompleted(ctx context.Context, id int) error {
	m.markCompletedCalled = true
	return m.markCompletedErr
}

// mockAccessChecker is a mock implementation of AccessChecker
type mockAccessChecker struct {
	hasAccess bool
	err       error
}

func (m *mockAccessChecker) HasAccess(ctx context.Context, userID, courseID int) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.hasAccess, nil
}

func TestBookingService_Book(t *testing.T) {
	lesson := &models.Lesson{ID: 7, CourseID: 5, TeacherID: 2, Title: "Grammar Basics"}

	tests := []struct {
		name          string
		actor         auth.Actor
		lessonID      int
		req           models.CreateBookingRequest
		bookingRepo   *mockBookingRepository
		lessonRepo    *mockLessonRepository
		access        *mockAccessChecker
		expectedError error
	}{
		{
			name:          "success",
			actor:         studentActor,
			lessonID:      7,
			req:           models.CreateBookingRequest{LessonType: models.LessonTypePrivate, Schedule: "2025-03-01T10:00"},
			bookingRepo:   &mockBookingRepository{},
			lessonRepo:    &mockLessonRepository{lesson: lesson},
			access:        &mockAccessChecker{hasAccess: true},
			expectedError: nil,
		},
		{
			name:          "success - RFC3339 schedule",
			actor:         studentActor,
			lessonID:      7,
			req:           models.CreateBookingRequest{LessonType: models.LessonTypeGroup, Schedule: "2025-03-01T10:00:00Z"},
			bookingRepo:   &mockBookingRepository{},
			lessonRepo:    &mockLessonRepository{lesson: lesson},
			access:        &mockAccessChecker{hasAccess: true},
			expectedError: nil,
		},
		{
			name:          "teacher may not book",
			actor:         teacherActor,
			lessonID:      7,
			req:           models.CreateBookingRequest{LessonType: models.LessonTypePrivate, Schedule: "2025-03-01T10:00"},
			bookingRepo:   &mockBookingRepository{},
			lessonRepo:    &mockLessonRepository{lesson: lesson},
			access:        &mockAccessChecker{hasAccess: true},
			expectedError: models.ErrForbidden,
		},
		{
			name:          "invalid lesson type",
			actor:         studentActor,
			lessonID:      7,
			req:           models.CreateBookingRequest{LessonType: "duo", Schedule: "2025-03-01T10:00"},
			bookingRepo:   &mockBookingRepository{},
			lessonRepo:    &mockLessonRepository{lesson: lesson},
			access:        &mockAccessChecker{hasAccess: true},
			expectedError: models.ErrInvalidLessonType,
		},
		{
			name:          "invalid schedule",
			actor:         studentActor,
			lessonID:      7,
			req:           models.CreateBookingRequest{LessonType: models.LessonTypePrivate, Schedule: "next tuesday"},
			bookingRepo:   &mockBookingRepository{},
			lessonRepo:    &mockLessonRepository{lesson: lesson},
			access:        &mockAccessChecker{hasAccess: true},
			expectedError: models.ErrInvalidSchedule,
		},
		{
			name:          "lesson not found",
			actor:         studentActor,
			lessonID:      999,
			req:           models.CreateBookingRequest{LessonType: models.LessonTypePrivate, Schedule: "2025-03-01T10:00"},
			bookingRepo:   &mockBookingRepository{},
			lessonRepo:    &mockLessonRepository{getByIDErr: models.ErrNotFound},
			access:        &mockAccessChecker{hasAccess: true},
			expectedError: models.ErrNotFound,
		},
		{
			name:          "no active enrollment",
			actor:         studentActor,
			lessonID:      7,
			req:           models.CreateBookingRequest{LessonType: models.LessonTypePrivate, Schedule: "2025-03-01T10:00"},
			bookingRepo:   &mockBookingRepository{},
			lessonRepo:    &mockLessonRepository{lesson: lesson},
			access:        &mockAccessChecker{hasAccess: false},
			expectedError: models.ErrForbidden,
		},
		{
			name:          "duplicate booking",
			actor:         studentActor,
			lessonID:      7,
			req:           models.CreateBookingRequest{LessonType: models.LessonTypePrivate, Schedule: "2025-03-01T10:00"},
			bookingRepo:   &mockBookingRepository{createErr: models.ErrDuplicateBooking},
			lessonRepo:    &mockLessonRepository{lesson: lesson},
			access:        &mockAccessChecker{hasAccess: true},
			expectedError: models.ErrDuplicateBooking,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewBookingService(tt.bookingRepo, tt.lessonRepo, tt.access, auth.NewRolePolicy())

			booking, err := svc.Book(context.Background(), tt.actor, tt.lessonID, tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, booking)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.actor.UserID, booking.UserID)
				assert.Equal(t, tt.lessonID, booking.LessonID)
				assert.Equal(t, lesson.CourseID, booking.CourseID)
				assert.Equal(t, tt.req.LessonType, booking.LessonType)
				assert.Equal(t, models.BookingStatusBooked, booking.Status)
			}
		})
	}
}

func TestBookingService_Book_NoWriteWithoutAccess(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := NewBookingService(
		repo,
		&mockLessonRepository{lesson: &models.Lesson{ID: 7, CourseID: 5}},
		&mockAccessChecker{hasAccess: false},
		auth.NewRolePolicy(),
	)

	_, err := svc.Book(context.Background(), studentActor, 7, models.CreateBookingRequest{
		LessonType: models.LessonTypePrivate,
		Schedule:   "2025-03-01T10:00",
	})

	assert.ErrorIs(t, err, models.ErrForbidden)
	assert.False(t, repo.createCalled)
}

func TestBookingService_Book_ScheduleParsing(t *testing.T) {
	svc := NewBookingService(
		&mockBookingRepository{},
		&mockLessonRepository{lesson: &models.Lesson{ID: 7, CourseID: 5}},
		&mockAccessChecker{hasAccess: true},
		auth.NewRolePolicy(),
	)

	booking, err := svc.Book(context.Background(), studentActor, 7, models.CreateBookingRequest{
		LessonType: models.LessonTypePrivate,
		Schedule:   "2025-03-01T10:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), booking.Schedule)
}

func TestBookingService_CompleteLesson(t *testing.T) {
	lesson := &models.Lesson{ID: 7, CourseID: 5, TeacherID: 2}

	tests := []struct {
		name            string
		actor           auth.Actor
		lessonRepo      *mockLessonRepository
		expectedError   error
		expectCompleted bool
	}{
		{
			name:            "assigned teacher may complete",
			actor:           teacherActor,
			lessonRepo:      &mockLessonRepository{lesson: lesson},
			expectedError:   nil,
			expectCompleted: true,
		},
		{
			name:            "admin may complete any lesson",
			actor:           adminActor,
			lessonRepo:      &mockLessonRepository{lesson: lesson},
			expectedError:   nil,
			expectCompleted: true,
		},
		{
			name:            "another teacher may not complete",
			actor:           auth.Actor{UserID: 9, Role: models.RoleTeacher},
			lessonRepo:      &mockLessonRepository{lesson: lesson},
			expectedError:   models.ErrForbidden,
			expectCompleted: false,
		},
		{
			name:            "student may not complete",
			actor:           studentActor,
			lessonRepo:      &mockLessonRepository{lesson: lesson},
			expectedError:   models.ErrForbidden,
			expectCompleted: false,
		},
		{
			name:            "lesson not found",
			actor:           teacherActor,
			lessonRepo:      &mockLessonRepository{getByIDErr: models.ErrNotFound},
			expectedError:   models.ErrNotFound,
			expectCompleted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewBookingService(&mockBookingRepository{}, tt.lessonRepo, &mockAccessChecker{}, auth.NewRolePolicy())

			err := svc.CompleteLesson(context.Background(), tt.actor, 7)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectCompleted, tt.lessonRepo.markCompletedCalled)
		})
	}
}

func TestBookingService_ListForUser(t *testing.T) {
	items := []models.BookingListItem{
		{ID: 1, LessonID: 7, LessonTitle: "Grammar Basics", CourseTitle: "Beginner English"},
	}

	tests := []struct {
		name          string
		actor         auth.Actor
		repo          *mockBookingRepository
		expectedError error
	}{
		{
			name:          "success",
			actor:         studentActor,
			repo:          &mockBookingRepository{bookings: items},
			expectedError: nil,
		},
		{
			name:          "teacher may not list bookings",
			actor:         teacherActor,
			repo:          &mockBookingRepository{bookings: items},
			expectedError: models.ErrForbidden,
		},
		{
			name:          "repository error",
			actor:         studentActor,
			repo:          &mockBookingRepository{getByUserErr: errors.New("database error")},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewBookingService(tt.repo, &mockLessonRepository{}, &mockAccessChecker{}, auth.NewRolePolicy())

			bookings, err := svc.ListForUser(context.Background(), tt.actor)

			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, bookings, 1)
			}
		})
	}
}

func TestBookingService_LessonsForTeacher(t *testing.T) {
	items := []models.TeacherLessonItem{
		{ID: 7, CourseID: 5, CourseTitle: "Beginner English", Title: "Grammar Basics"},
	}

	tests := []struct {
		name          string
		actor         auth.Actor
		expectedError error
	}{
		{
			name:          "teacher sees own schedule",
			actor:         teacherActor,
			expectedError: nil,
		},
		{
			name:          "student may not view teaching schedule",
			actor:         studentActor,
			expectedError: models.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewBookingService(&mockBookingRepository{}, &mockLessonRepository{lessons: items}, &mockAccessChecker{}, auth.NewRolePolicy())

			lessons, err := svc.LessonsForTeacher(context.Background(), tt.actor)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Len(t, lessons, 1)
			}
		})
	}
}
