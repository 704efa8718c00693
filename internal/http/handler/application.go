package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lendapi/internal/service"
)

// Root returns the API identity message.
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Commercial Lending API"})
	}
}

// SeedApplications wipes the collection and loads the demo dataset.
//
//	@Summary      Seed the database
//	@Tags         applications
//	@Produce      json
//	@Success      200  {object}  service.SeedResult
//	@Router       /api/seed [post]
func SeedApplications(svc service.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Seed(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// ListApplications returns applications plus dashboard stats. The optional
// search query filters the list; the stats always cover the whole collection.
//
//	@Summary      List applications
//	@Tags         applications
//	@Produce      json
//	@Param        search  query  string  false  "substring filter"
//	@Success      200  {object}  service.ApplicationListResult
//	@Router       /api/applications [get]
func ListApplications(svc service.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext(), c.Query("search"))
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetApplication returns one application by ID.
//
//	@Summary      Get an application
//	@Tags         applications
//	@Produce      json
//	@Param        id  path  string  true  "application id"
//	@Success      200  {object}  model.Application
//	@Failure      404  {object}  errorPayload
//	@Router       /api/applications/{id} [get]
func GetApplication(svc service.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		app, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "application not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(app)
	}
}

type updateReviewStatusRequest struct {
	ReviewStatus string `json:"review_status"`
}

// UpdateReviewStatus moves an application to a new review state.
//
//	@Summary      Update review status
//	@Tags         applications
//	@Accept       json
//	@Produce      json
//	@Param        id  path  string  true  "application id"
//	@Success      200  {object}  model.Application
//	@Failure      400  {object}  errorPayload
//	@Failure      404  {object}  errorPayload
//	@Router       /api/applications/{id}/review-status [put]
func UpdateReviewStatus(svc service.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var req updateReviewStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.ReviewStatus == "" {
			return writeError(c, fiber.StatusBadRequest, "REVIEW_STATUS_REQUIRED", "review_status is required")
		}

		app, err := svc.UpdateReviewStatus(c.UserContext(), id, req.ReviewStatus)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidReviewStatus):
				return writeError(c, fiber.StatusBadRequest, "INVALID_REVIEW_STATUS", "invalid review status")
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "application not found")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(app)
	}
}
