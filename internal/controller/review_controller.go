package controller

import (
	"errors"

	"quality-gate-be/internal/dto"
	"quality-gate-be/internal/pkg/serverutils"
	"quality-gate-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReviewController interface {
	RegisterRoutes(r fiber.Router)
	GetBoard(ctx *fiber.Ctx) error
	GetSummary(ctx *fiber.Ctx) error
	GetSummaryDetail(ctx *fiber.Ctx) error
	GetPresets(ctx *fiber.Ctx) error
	Pass(ctx *fiber.Ctx) error
	Revise(ctx *fiber.Ctx) error
}

type reviewController struct {
	reviewService service.IReviewService
}

func NewReviewController(reviewService service.IReviewService) IReviewController {
	return &reviewController{
		reviewService: reviewService,
	}
}

func (c *reviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/review/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("board", c.GetBoard)
	h.Get("summary", c.GetSummary)
	h.Get("summary/:bucket", c.GetSummaryDetail)
	h.Get("presets", c.GetPresets)
	h.Post(":id/pass", c.Pass)
	h.Post(":id/revise", c.Revise)
}

// mapServiceError turns sentinel errors into HTTP statuses; everything
// else passes through to the error middleware as a 500.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidTransition):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrActionInFlight):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return err
	}
}

func (c *reviewController) GetBoard(ctx *fiber.Ctx) error {
	var req dto.BoardQueryRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}

	res, err := c.reviewService.GetBoard(ctx.Context(), &req)
	if err != nil {
		return mapServiceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get review board", res))
}

func (c *reviewController) GetSummary(ctx *fiber.Ctx) error {
	res, err := c.reviewService.GetSummary(ctx.Context())
	if err != nil {
		return mapServiceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get review summary", res))
}

func (c *reviewController) GetSummaryDetail(ctx *fiber.Ctx) error {
	bucket := ctx.Params("bucket")

	res, err := c.reviewService.GetSummaryDetail(ctx.Context(), bucket)
	if err != nil {
		return mapServiceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get review summary detail", res))
}

func (c *reviewController) GetPresets(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get grading presets", c.reviewService.GetPresets(ctx.Context())))
}

func (c *reviewController) Pass(ctx *fiber.Ctx) error {
	reviewerIdStr, _ := ctx.Locals("user_id").(string)
	reviewerId, err := uuid.Parse(reviewerIdStr)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session ID")
	}

	var req dto.PassReviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reviewService.Pass(ctx.Context(), reviewerId, &req)
	if err != nil {
		return mapServiceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success pass review", res))
}

func (c *reviewController) Revise(ctx *fiber.Ctx) error {
	reviewerIdStr, _ := ctx.Locals("user_id").(string)
	reviewerId, err := uuid.Parse(reviewerIdStr)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session ID")
	}

	var req dto.ReviseReviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reviewService.Revise(ctx.Context(), reviewerId, &req)
	if err != nil {
		return mapServiceError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success revise review", res))
}
