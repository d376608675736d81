package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/englishlessons/backend/internal/models"
)

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{
		db: db,
	}
}

// GetByID retrieves a course by ID
func (r *courseRepository) GetByID(ctx context.Context, id int) (*models.Course, error) {
	query := `
		SELECT id, title, course_type, description, price
		FROM courses
		WHERE id = ?
		LIMIT 1
	`

	course := &models.Course{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.CourseType,
		&course.Description,
		&course.Price,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("course %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}

	return course, nil
}

// GetAll retrieves all courses, optionally filtered by course type
func (r *courseRepository) GetAll(ctx context.Context, courseType *models.CourseType) ([]models.CourseListItem, error) {
	query := `
		SELECT id, title, course_type, price
		FROM courses
	`
	var args []any
	if courseType != nil {
		query += ` WHERE course_type = ?`
		args = append(args, *courseType)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []models.CourseListItem
	for rows.Next() {
		var course models.CourseListItem
		err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.CourseType,
			&course.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}
