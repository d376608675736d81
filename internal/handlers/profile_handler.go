package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/englishlessons/backend/internal/auth"
	"github.com/englishlessons/backend/internal/models"
)

// ProfileService is the interface that wraps methods for profile operations
type ProfileService interface {
	// Me retrieves the authenticated actor's own profile
	Me(ctx context.Context, actor auth.Actor) (*models.User, error)
}

// ProfileHandler handles HTTP requests for the user's own profile
type ProfileHandler struct {
	BaseHandler
	service ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(svc ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all profile handler routes
func (h *ProfileHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/me", h.Me)
	})
}

// Me handles GET /me
// @Summary Get own profile
// @Description Get the authenticated user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.User "User profile"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /me [get]
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.GetActor(r.Context())
	if !ok {
		h.Logger.Error("actor not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	user, err := h.service.Me(r.Context(), actor)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}
