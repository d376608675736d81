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

// EnrollmentService is the interface that wraps methods for enrollment operations
type EnrollmentService interface {
	// Enroll registers the actor in a course
	//
	// "ctx" is the context for the request.
	// "actor" is the authenticated caller.
	// "courseID" is the ID of the course to enroll in.
	// "enrollmentType" is free_trial or paid.
	//
	// Returns the created enrollment and an error if any.
	Enroll(ctx context.Context, actor auth.Actor, courseID int, enrollmentType models.EnrollmentType) (*models.Enrollment, error)
	// ListForUser retrieves the actor's enrollments
	//
	// "ctx" is the context for the request.
	// "actor" is the authenticated caller.
	//
	// Returns the actor's enrollments and an error if any.
	ListForUser(ctx context.Context, actor auth.Actor) ([]models.EnrollmentListItem, error)
}

// EnrollmentHandler handles HTTP requests for enrollment operations
type EnrollmentHandler struct {
	BaseHandler
	service EnrollmentService
}

// NewEnrollmentHandler creates a new enrollment handler
func NewEnrollmentHandler(svc EnrollmentService, logger *zap.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all enrollment handler routes
func (h *EnrollmentHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/courses/{id}/enroll", h.Enroll)
		r.Get("/enrollments", h.ListEnrollments)
	})
}

// Enroll handles POST /courses/{id}/enroll
// @Summary Enroll in a course
// @Description Enroll the authenticated student in a course; paid enrollments start pending until payment is confirmed
// @Tags enrollments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Param request body models.CreateEnrollmentRequest true "Enrollment type"
// @Success 201 {object} models.Enrollment "Created enrollment"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 409 {object} map[string]string "Already enrolled"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{id}/enroll [post]
func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.GetActor(r.Context())
	if !ok {
		h.Logger.Error("actor not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	courseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	var req models.CreateEnrollmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	enrollment, err := h.service.Enroll(r.Context(), actor, courseID, req.EnrollmentType)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, enrollment)
}

// ListEnrollments handles GET /enrollments
// @Summary Get own enrollments
// @Description Get all enrollments of the authenticated student
// @Tags enrollments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.EnrollmentListItem "List of enrollments"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /enrollments [get]
func (h *EnrollmentHandler) ListEnrollments(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.GetActor(r.Context())
	if !ok {
		h.Logger.Error("actor not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	enrollments, err := h.service.ListForUser(r.Context(), actor)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, enrollments)
}
