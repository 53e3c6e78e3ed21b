package handler

import (
	"github.com/fadilmartias/career-coach/internal/apperr"
	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/middleware"
	"github.com/fadilmartias/career-coach/internal/usecase"
	"github.com/fadilmartias/career-coach/internal/util"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/users/sync", h.Sync)
	api.Get("/users/onboarding", h.OnboardingStatus)
	api.Put("/users/profile", h.UpdateProfile)
}

// Sync creates the caller's User row on first visit, from the token claims.
func (h *UserHandler) Sync(c *fiber.Ctx) error {
	user, err := h.uc.SyncUser(
		c.Context(),
		middleware.Subject(c),
		middleware.LocalString(c, middleware.CtxEmailKey),
		middleware.LocalString(c, middleware.CtxNameKey),
		middleware.LocalString(c, middleware.CtxImageKey),
	)
	if err != nil {
		return respondError(c, "failed to sync user", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success sync user",
		Data:    user,
	})
}

func (h *UserHandler) OnboardingStatus(c *fiber.Ctx) error {
	status, err := h.uc.GetOnboardingStatus(c.Context(), middleware.Subject(c))
	if err != nil {
		return respondError(c, "failed to check onboarding status", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get onboarding status",
		Data:    status,
	})
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	user, err := h.uc.UpdateProfile(c.Context(), middleware.Subject(c), req)
	if err != nil {
		return respondError(c, "failed to update profile", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update profile",
		Data:    user,
	})
}

// respondError maps a usecase error to the response envelope, keeping the
// user-facing message generic.
func respondError(c *fiber.Ctx, message string, err error) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    apperr.StatusCode(err),
		Message: message,
	}, err)
}
