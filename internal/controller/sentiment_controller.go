package controller

import (
	"time"

	"budaya-aceh-be/internal/dto"
	"budaya-aceh-be/internal/pkg/serverutils"
	"budaya-aceh-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type ISentimentController interface {
	RegisterRoutes(r fiber.Router)
	Predict(ctx *fiber.Ctx) error
}

type sentimentController struct {
	sentimentService service.ISentimentService
}

func NewSentimentController(sentimentService service.ISentimentService) ISentimentController {
	return &sentimentController{
		sentimentService: sentimentService,
	}
}

func (c *sentimentController) RegisterRoutes(r fiber.Router) {
	// 30 requests/minute per client address
	r.Post("/predict_sentiment", limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Minute,
		LimitReached: func(ctx *fiber.Ctx) error {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"detail": "Rate limit exceeded: 30 per 1 minute",
			})
		},
	}), c.Predict)
}

func (c *sentimentController) Predict(ctx *fiber.Ctx) error {
	var req dto.SentimentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewApiError(fiber.StatusUnprocessableEntity, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sentimentService.Predict(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
