package handler

import (
	"time"

	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/middleware"
	"github.com/fadilmartias/career-coach/internal/usecase"
	"github.com/fadilmartias/career-coach/internal/util"
	"github.com/gofiber/fiber/v2"
)

type InterviewHandler struct {
	insights    *usecase.InsightUsecase
	assessments *usecase.AssessmentUsecase
}

func NewInterviewHandler(insights *usecase.InsightUsecase, assessments *usecase.AssessmentUsecase) *InterviewHandler {
	return &InterviewHandler{insights: insights, assessments: assessments}
}

func (h *InterviewHandler) RegisterRoutes(api fiber.Router) {
	api.Get("/insights", h.IndustryInsights)
	// quiz generation is a model round trip per call, keep it throttled
	api.Get("/interview/quiz", middleware.RateLimiter(5, 1*time.Minute), h.GenerateQuiz)
	api.Post("/interview/quiz", h.SaveQuizResult)
	api.Get("/interview/assessments", h.Assessments)
}

func (h *InterviewHandler) IndustryInsights(c *fiber.Ctx) error {
	insight, err := h.insights.GetIndustryInsights(c.Context(), middleware.Subject(c))
	if err != nil {
		return respondError(c, "failed to get industry insights", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get industry insights",
		Data:    insight,
	})
}

func (h *InterviewHandler) GenerateQuiz(c *fiber.Ctx) error {
	questions, err := h.assessments.GenerateQuiz(c.Context(), middleware.Subject(c))
	if err != nil {
		return respondError(c, "failed to generate quiz", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success generate quiz",
		Data:    fiber.Map{"questions": questions},
	})
}

func (h *InterviewHandler) SaveQuizResult(c *fiber.Ctx) error {
	var req dto.SaveQuizResultRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	assessment, err := h.assessments.SaveQuizResult(c.Context(), middleware.Subject(c), req)
	if err != nil {
		return respondError(c, "failed to save quiz result", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success save quiz result",
		Data:    assessment,
	})
}

func (h *InterviewHandler) Assessments(c *fiber.Ctx) error {
	assessments, err := h.assessments.GetAssessments(c.Context(), middleware.Subject(c))
	if err != nil {
		return respondError(c, "failed to get assessments", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get assessments",
		Data:    assessments,
	})
}
