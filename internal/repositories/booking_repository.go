package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/englishlessons/backend/internal/models"
)

type bookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *sql.DB) *bookingRepository {
	return &bookingRepository{
		db: db,
	}
}

// Create inserts a new lesson booking. The (user_id, lesson_id,
// lesson_type) unique key makes the insert the atomic uniqueness check;
// a violation surfaces as models.ErrDuplicateBooking.
func (r *bookingRepository) Create(ctx context.Context, booking *models.LessonBooking) error {
	query := `
		INSERT INTO lesson_bookings (user_id, lesson_id, course_id, lesson_type, schedule, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		booking.UserID,
		booking.LessonID,
		booking.CourseID,
		booking.LessonType,
		booking.Schedule,
		booking.Status,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("user %d, lesson %d, type %s: %w", booking.UserID, booking.LessonID, booking.LessonType, models.ErrDuplicateBooking)
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	booking.ID = int(id)
	return nil
}

// GetByID retrieves a booking by ID
func (r *bookingRepository) GetByID(ctx context.Context, id int) (*models.LessonBooking, error) {
	query := `
		SELECT id, user_id, lesson_id, course_id, lesson_type, schedule, status
		FROM lesson_bookings
		WHERE id = ?
		LIMIT 1
	`

	booking := &models.LessonBooking{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.LessonID,
		&booking.CourseID,
		&booking.LessonType,
		&booking.Schedule,
		&booking.Status,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("booking %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking by id: %w", err)
	}

	return booking, nil
}

// GetByUserID retrieves all bookings for a user with lesson and course titles
func (r *bookingRepository) GetByUserID(ctx context.Context, userID int) ([]models.BookingListItem, error) {
	query := `
		SELECT b.id, b.lesson_id, l.title, c.title, b.lesson_type, b.schedule, b.status
		FROM lesson_bookings b
		JOIN lessons l ON l.id = b.lesson_id
		JOIN courses c ON c.id = b.course_id
		WHERE b.user_id = ?
		ORDER BY b.schedule
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.BookingListItem
	for rows.Next() {
		var booking models.BookingListItem
		err := rows.Scan(
			&booking.ID,
			&booking.LessonID,
			&booking.LessonTitle,
			&booking.CourseTitle,
			&booking.LessonType,
			&booking.Schedule,
			&booking.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return bookings, nil
}
