package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/englishlessons/backend/internal/auth"
	"github.com/englishlessons/backend/internal/models"
)

// BookingService is the interface that wraps methods for lesson booking operations
type BookingService interface {
	// Book reserves a lesson slot for the actor
	//
	// "ctx" is the context for the request.
	// "actor" is the authenticated caller.
	// "lessonID" is the ID of the lesson to book.
	// "req" carries the lesson type and requested schedule.
	//
	// Returns the created booking and an error if any.
	Book(ctx context.Context, actor auth.Actor, lessonID int, req models.CreateBookingRequest) (*models.LessonBooking, error)
	// ListForUser retrieves the actor's bookings
	//
	// "ctx" is the context for the request.
	// "actor" is the authenticated caller.
	//
	// Returns the actor's bookings and an error if any.
	ListForUser(ctx context.Context, actor auth.Actor) ([]models.BookingListItem, error)
	// CompleteLesson marks a lesson as completed
	//
	// "ctx" is the context for the request.
	// "actor" is the authenticated caller.
	// "lessonID" is the ID of the lesson to complete.
	//
	// Returns an error if any.
	CompleteLesson(ctx context.Context, actor auth.Actor, lessonID int) error
	// LessonsForTeacher retrieves the actor's own teaching schedule
	//
	// "ctx" is the context for the request.
	// "actor" is the authenticated caller.
	//
	// Returns the teacher's lessons and an error if any.
	LessonsForTeacher(ctx context.Context, actor auth.Actor) ([]models.TeacherLessonItem, error)
}

// BookingHandler handles HTTP requests for lesson booking operations
type BookingHandler struct {
	BaseHandler
	service BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(svc BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all booking handler routes
func (h *BookingHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/lessons/{id}/book", h.Book)
		r.Post("/lessons/{id}/complete", h.CompleteLesson)
		r.Get("/bookings", h.ListBookings)
		r.Get("/teacher/lessons", h.TeacherLessons)
	})
}

// Book handles POST /lessons/{id}/book
// @Summary Book a lesson
// @Description Book a lesson slot; requires a free trial or paid enrollment in the lesson's course
// @Tags bookings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Lesson ID"
// @Param request body models.CreateBookingRequest true "Lesson type and schedule"
// @Success 201 {object} models.LessonBooking "Created booking"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "No active enrollment"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 409 {object} map[string]string "Already booked"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/{id}/book [post]
func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.GetActor(r.Context())
	if !ok {
		h.Logger.Error("actor not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	lessonID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid lesson ID")
		return
	}

	var req models.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	booking, err := h.service.Book(r.Context(), actor, lessonID, req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, booking)
}

// CompleteLesson handles POST /lessons/{id}/complete
// @Summary Complete a lesson
// @Description Mark a lesson as completed; only the lesson's teacher or an admin may do this
// @Tags bookings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Lesson ID"
// @Success 200 {object} map[string]string "Lesson completed"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/{id}/complete [post]
func (h *BookingHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.GetActor(r.Context())
	if !ok {
		h.Logger.Error("actor not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	lessonID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid lesson ID")
		return
	}

	if err := h.service.CompleteLesson(r.Context(), actor, lessonID); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "lesson completed"})
}

// ListBookings handles GET /bookings
// @Summary Get own bookings
// @Description Get all lesson bookings of the authenticated student
// @Tags bookings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.BookingListItem "List of bookings"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.GetActor(r.Context())
	if !ok {
		h.Logger.Error("actor not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	bookings, err := h.service.ListForUser(r.Context(), actor)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, bookings)
}

// TeacherLessons handles GET /teacher/lessons
// @Summary Get own teaching schedule
// @Description Get all lessons taught by the authenticated teacher
// @Tags bookings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.TeacherLessonItem "List of lessons"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /teacher/lessons [get]
func (h *BookingHandler) TeacherLessons(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.GetActor(r.Context())
	if !ok {
		h.Logger.Error("actor not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	lessons, err := h.service.LessonsForTeacher(r.Context(), actor)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, lessons)
}
