package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lendapi/internal/service"
)

// UploadAttachment stores a financial-statement file for an application
// (multipart/form-data, field name: file).
//
//	@Summary      Upload an attachment
//	@Tags         attachments
//	@Accept       multipart/form-data
//	@Produce      json
//	@Param        id  path  string  true  "application id"
//	@Success      201  {object}  model.Attachment
//	@Failure      404  {object}  errorPayload
//	@Router       /api/applications/{id}/attachments [post]
func UploadAttachment(svc service.AttachmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		att, err := svc.Upload(c.UserContext(), id, f, fh.Filename, ct, fh.Size)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "application not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(att)
	}
}

// ListAttachments returns all attachments for an application.
//
//	@Summary      List attachments
//	@Tags         attachments
//	@Produce      json
//	@Param        id  path  string  true  "application id"
//	@Success      200  {array}  model.Attachment
//	@Router       /api/applications/{id}/attachments [get]
func ListAttachments(svc service.AttachmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		atts, err := svc.ListByApplication(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "application not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(atts)
	}
}

// DownloadAttachment returns a short-lived presigned URL for the file.
//
//	@Summary      Get a download URL
//	@Tags         attachments
//	@Produce      json
//	@Param        id  path  string  true  "attachment id"
//	@Success      200  {object}  map[string]string
//	@Router       /api/attachments/{id}/download [get]
func DownloadAttachment(svc service.AttachmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		url, err := svc.DownloadURL(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "attachment not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"url": url})
	}
}

// DeleteAttachment removes the stored file and its record.
//
//	@Summary      Delete an attachment
//	@Tags         attachments
//	@Param        id  path  string  true  "attachment id"
//	@Success      204
//	@Failure      404  {object}  errorPayload
//	@Router       /api/attachments/{id} [delete]
func DeleteAttachment(svc service.AttachmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "attachment not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
