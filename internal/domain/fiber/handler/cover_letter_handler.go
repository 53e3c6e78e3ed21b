package handler

import (
	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/middleware"
	"github.com/fadilmartias/career-coach/internal/usecase"
	"github.com/fadilmartias/career-coach/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CoverLetterHandler struct {
	uc *usecase.CoverLetterUsecase
}

func NewCoverLetterHandler(uc *usecase.CoverLetterUsecase) *CoverLetterHandler {
	return &CoverLetterHandler{uc: uc}
}

func (h *CoverLetterHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/cover-letters", h.Generate)
	api.Get("/cover-letters", h.List)
	api.Get("/cover-letters/:id", h.Get)
	api.Delete("/cover-letters/:id", h.Delete)
}

func (h *CoverLetterHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateCoverLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	letter, err := h.uc.Generate(c.Context(), middleware.Subject(c), req)
	if err != nil {
		return respondError(c, "failed to generate cover letter", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success generate cover letter",
		Data:    letter,
	})
}

func (h *CoverLetterHandler) List(c *fiber.Ctx) error {
	letters, err := h.uc.List(c.Context(), middleware.Subject(c))
	if err != nil {
		return respondError(c, "failed to get cover letters", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get cover letters",
		Data:    letters,
	})
}

func (h *CoverLetterHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid cover letter id",
		}, err)
	}

	letter, err := h.uc.Get(c.Context(), middleware.Subject(c), id)
	if err != nil {
		return respondError(c, "cover letter not found", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get cover letter",
		Data:    letter,
	})
}

func (h *CoverLetterHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid cover letter id",
		}, err)
	}

	if err := h.uc.Delete(c.Context(), middleware.Subject(c), id); err != nil {
		return respondError(c, "failed to delete cover letter", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success delete cover letter",
	})
}
