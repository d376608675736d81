package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/englishlessons/backend/internal/models"
)

// CatalogService is the interface that wraps methods for the public course catalog
type CatalogService interface {
	// ListCourses retrieves all courses, optionally filtered by course type
	//
	// "ctx" is the context for the request.
	// "courseType" is an optional course type filter.
	//
	// Returns a list of courses and an error if any.
	ListCourses(ctx context.Context, courseType *models.CourseType) ([]models.CourseListItem, error)
	// GetCourse retrieves a single course
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// Returns the course and an error if any.
	GetCourse(ctx context.Context, id int) (*models.Course, error)
	// GetLesson retrieves a single lesson
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the lesson.
	//
	// Returns the lesson and an error if any.
	GetLesson(ctx context.Context, id int) (*models.Lesson, error)
	// LessonsForCourse retrieves a course together with its lessons
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns the course, its lessons ordered by schedule, and an error if any.
	LessonsForCourse(ctx context.Context, courseID int) (*models.Course, []models.Lesson, error)
}

// CourseHandler handles HTTP requests for the public course catalog
type CourseHandler struct {
	BaseHandler
	service CatalogService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(svc CatalogService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all course catalog routes
func (h *CourseHandler) RegisterRoutes(r chi.Router) {
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", h.ListCourses)
		r.Get("/{id}", h.GetCourse)
		r.Get("/{id}/lessons", h.GetCourseLessons)
	})
	r.Get("/lessons/{id}", h.GetLesson)
}

// ListCourses handles GET /courses
// @Summary Get list of courses
// @Description Get all courses, optionally filtered by course type
// @Tags courses
// @Accept json
// @Produce json
// @Param courseType query string false "Course type (b, i, a)"
// @Success 200 {array} models.CourseListItem "List of courses"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses [get]
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	var courseType *models.CourseType
	if raw := r.URL.Query().Get("courseType"); raw != "" {
		ct, ok := models.CourseTypeAbbreviation[raw]
		if !ok {
			h.RespondError(w, http.StatusBadRequest, "invalid course type")
			return
		}
		courseType = &ct
	}

	courses, err := h.service.ListCourses(r.Context(), courseType)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, courses)
}

// GetCourse handles GET /courses/{id}
// @Summary Get course details
// @Description Get a single course by ID
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.Course "Course details"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{id} [get]
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	course, err := h.service.GetCourse(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, course)
}

// GetCourseLessons handles GET /courses/{id}/lessons
// @Summary Get lessons in a course
// @Description Get a course together with its lessons ordered by schedule
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.CourseLessonsResponse "Course with lessons"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{id}/lessons [get]
func (h *CourseHandler) GetCourseLessons(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	course, lessons, err := h.service.LessonsForCourse(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, models.CourseLessonsResponse{
		Course:  *course,
		Lessons: lessons,
	})
}

// GetLesson handles GET /lessons/{id}
// @Summary Get lesson details
// @Description Get a single lesson by ID
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} models.Lesson "Lesson details"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/{id} [get]
func (h *CourseHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid lesson ID")
		return
	}

	lesson, err := h.service.GetLesson(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, lesson)
}
