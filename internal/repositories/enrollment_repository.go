package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/englishlessons/backend/internal/models"
)

type enrollmentRepository struct {
	db *sql.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *sql.DB) *enrollmentRepository {
	return &enrollmentRepository{
		db: db,
	}
}

// Create inserts a new enrollment. The (user_id, course_id) unique key
// makes the insert the atomic uniqueness check; a violation surfaces as
// models.ErrDuplicateEnrollment.
func (r *enrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (user_id, course_id, enrollment_type, status)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		enrollment.UserID,
		enrollment.CourseID,
		enrollment.EnrollmentType,
		enrollment.Status,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("user %d, course %d: %w", enrollment.UserID, enrollment.CourseID, models.ErrDuplicateEnrollment)
		}
		return fmt.Errorf("failed to create enrollment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	enrollment.ID = int(id)
	return nil
}

// GetByID retrieves an enrollment by ID
func (r *enrollmentRepository) GetByID(ctx context.Context, id int) (*models.Enrollment, error) {
	query := `
		SELECT id, user_id, course_id, enrollment_type, status, created_at
		FROM enrollments
		WHERE id = ?
		LIMIT 1
	`

	enrollment := &models.Enrollment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&enrollment.ID,
		&enrollment.UserID,
		&enrollment.CourseID,
		&enrollment.EnrollmentType,
		&enrollment.Status,
		&enrollment.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("enrollment %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment by id: %w", err)
	}

	return enrollment, nil
}

// MarkPaid transitions an enrollment to paid. The update is conditional
// on the current status so a retried gateway callback is a no-op rather
// than a blind overwrite; paid never moves back.
func (r *enrollmentRepository) MarkPaid(ctx context.Context, id int) error {
	query := `
		UPDATE enrollments
		SET status = ?
		WHERE id = ? AND status <> ?
	`

	result, err := r.db.ExecContext(ctx, query, models.EnrollmentStatusPaid, id, models.EnrollmentStatusPaid)
	if err != nil {
		return fmt.Errorf("failed to mark enrollment paid: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		// Either already paid (idempotent no-op) or missing
		exists, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("enrollment %d: %w", id, models.ErrNotFound)
		}
	}

	return nil
}

// HasActive checks whether the user holds a usable enrollment for the
// course: a free trial, or a paid enrollment whose payment is confirmed.
func (r *enrollmentRepository) HasActive(ctx context.Context, userID, courseID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM enrollments
			WHERE user_id = ? AND course_id = ?
			AND (enrollment_type = ? OR status = ?)
		)
	`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, userID, courseID,
		models.EnrollmentTypeFreeTrial, models.EnrollmentStatusPaid).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment access: %w", err)
	}

	return exists, nil
}

// GetByUserID retrieves all enrollments for a user with course titles
func (r *enrollmentRepository) GetByUserID(ctx context.Context, userID int) ([]models.EnrollmentListItem, error) {
	query := `
		SELECT e.id, e.course_id, c.title, e.enrollment_type, e.status
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.user_id = ?
		ORDER BY e.id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []models.EnrollmentListItem
	for rows.Next() {
		var enrollment models.EnrollmentListItem
		err := rows.Scan(
			&enrollment.ID,
			&enrollment.CourseID,
			&enrollment.CourseTitle,
			&enrollment.EnrollmentType,
			&enrollment.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return enrollments, nil
}

// exists checks if an enrollment with the given ID exists
func (r *enrollmentRepository) exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM enrollments WHERE id = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment existence: %w", err)
	}

	return exists, nil
}
