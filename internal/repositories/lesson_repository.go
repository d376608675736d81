package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/englishlessons/backend/internal/models"
)

type lessonRepository struct {
	db *sql.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *sql.DB) *lessonRepository {
	return &lessonRepository{
		db: db,
	}
}

// GetByID retrieves a lesson by its ID
func (r *lessonRepository) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	query := `
		SELECT id, course_id, teacher_id, title, schedule, completed
		FROM lessons
		WHERE id = ?
		LIMIT 1
	`

	var lesson models.Lesson
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&lesson.ID,
		&lesson.CourseID,
		&lesson.TeacherID,
		&lesson.Title,
		&lesson.Schedule,
		&lesson.Completed,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("lesson %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson by id: %w", err)
	}

	return &lesson, nil
}

// GetByCourseID retrieves all lessons for a course, sorted by schedule
func (r *lessonRepository) GetByCourseID(ctx context.Context, courseID int) ([]models.Lesson, error) {
	query := `
		SELECT id, course_id, teacher_id, title, schedule, completed
		FROM lessons
		WHERE course_id = ?
		ORDER BY schedule
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.Lesson
	for rows.Next() {
		var lesson models.Lesson
		err := rows.Scan(
			&lesson.ID,
			&lesson.CourseID,
			&lesson.TeacherID,
			&lesson.Title,
			&lesson.Schedule,
			&lesson.Completed,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

// GetByTeacherID retrieves all lessons assigned to a teacher with course titles
func (r *lessonRepository) GetByTeacherID(ctx context.Context, teacherID int) ([]models.TeacherLessonItem, error) {
	query := `
		SELECT l.id, l.course_id, c.title, l.title, l.schedule, l.completed
		FROM lessons l
		JOIN courses c ON c.id = l.course_id
		WHERE l.teacher_id = ?
		ORDER BY l.schedule
	`

	rows, err := r.db.QueryContext(ctx, query, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to query teacher lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.TeacherLessonItem
	for rows.Next() {
		var lesson models.TeacherLessonItem
		err := rows.Scan(
			&lesson.ID,
			&lesson.CourseID,
			&lesson.CourseTitle,
			&lesson.Title,
			&lesson.Schedule,
			&lesson.Completed,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan teacher lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

// MarkCompleted sets a lesson's completed flag to true. The update only
// ever moves false -> true; a lesson already completed is a no-op.
func (r *lessonRepository) MarkCompleted(ctx context.Context, id int) error {
	query := `
		UPDATE lessons
		SET completed = TRUE
		WHERE id = ? AND completed = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark lesson completed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		// Either already completed or missing; distinguish the two
		exists, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("lesson %d: %w", id, models.ErrNotFound)
		}
	}

	return nil
}

// exists checks if a lesson with the given ID exists
func (r *lessonRepository) exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM lessons WHERE id = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check lesson existence: %w", err)
	}

	return exists, nil
}
