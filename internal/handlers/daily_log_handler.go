package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/northstar-app/northstar-backend/internal/dto"
	"github.com/northstar-app/northstar-backend/internal/identity"
	"github.com/northstar-app/northstar-backend/internal/services"
)

type DailyLogHandler struct {
	service *services.DailyLogService
}

func NewDailyLogHandler(service *services.DailyLogService) *DailyLogHandler {
	return &DailyLogHandler{service: service}
}

// Get always answers 200 for a well-formed date: a day that was never
// logged comes back as the default log, not a 404.
func (h *DailyLogHandler) Get(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	log, err := h.service.GetDailyLog(userID, c.Params("date"))
	if err != nil {
		if services.IsValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch daily log",
		})
	}

	return c.JSON(log)
}

func (h *DailyLogHandler) Upsert(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UpsertDailyLogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	log, err := h.service.UpsertDailyLog(userID, req)
	if err != nil {
		if services.IsValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save daily log",
		})
	}

	return c.JSON(log)
}
