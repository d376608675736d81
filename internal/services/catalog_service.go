package services

import (
	"context"
	"fmt"

	"github.com/englishlessons/backend/internal/models"
)

// CatalogCourseRepository defines methods for course data access
type CatalogCourseRepository interface {
	// GetByID retrieves a course by ID
	GetByID(ctx context.Context, id int) (*models.Course, error)
	// GetAll retrieves all courses, optionally filtered by course type
	GetAll(ctx context.Context, courseType *models.CourseType) ([]models.CourseListItem, error)
}

// CatalogLessonRepository defines methods for lesson data access
type CatalogLessonRepository interface {
	// GetByID retrieves a lesson by ID
	GetByID(ctx context.Context, id int) (*models.Lesson, error)
	// GetByCourseID retrieves all lessons for a course
	GetByCourseID(ctx context.Context, courseID int) ([]models.Lesson, error)
}

type catalogService struct {
	courseRepo CatalogCourseRepository
	lessonRepo CatalogLessonRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(courseRepo CatalogCourseRepository, lessonRepo CatalogLessonRepository) *catalogService {
	return &catalogService{
		courseRepo: courseRepo,
		lessonRepo: lessonRepo,
	}
}

// ListCourses retrieves all courses, optionally filtered by course type
func (s *catalogService) ListCourses(ctx context.Context, courseType *models.CourseType) ([]models.CourseListItem, error) {
	return s.courseRepo.GetAll(ctx, courseType)
}

// GetCourse retrieves a course by ID
func (s *catalogService) GetCourse(ctx context.Context, id int) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// GetLesson retrieves a lesson by ID
func (s *catalogService) GetLesson(ctx context.Context, id int) (*models.Lesson, error) {
	return s.lessonRepo.GetByID(ctx, id)
}

// LessonsForCourse retrieves a course together with its lessons
func (s *catalogService) LessonsForCourse(ctx context.Context, courseID int) (*models.Course, []models.Lesson, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get course: %w", err)
	}

	lessons, err := s.lessonRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get lessons: %w", err)
	}

	return course, lessons, nil
}
