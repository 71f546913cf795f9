package handler

import (
	"github.com/gofiber/fiber/v2"

	"credvault/internal/service"
)

// registerApplicationFiles mounts the upload and download-link routes for
// job hunt application files.
func registerApplicationFiles(r fiber.Router, files service.ApplicationFileService) {
	r.Post("/:id/files", uploadApplicationFile(files))
	r.Get("/:id/files/:name", applicationFileLink(files))
}

// uploadApplicationFile stores the multipart field "file" and records its key
// on the job hunt credential.
//
// @Summary Attach an application file
// @Tags job hunt credentials
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "record id"
// @Param file formData file true "file to upload"
// @Success 201 {object} model.JobHuntCredential
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /job_hunt_cred/{id}/files [post]
func uploadApplicationFile(files service.ApplicationFileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
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

		rec, err := files.Attach(c.UserContext(), pathParam(c, "id"), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// @Summary Presigned download link for an application file
// @Tags job hunt credentials
// @Produce json
// @Param id path string true "record id"
// @Param name path string true "file name"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /job_hunt_cred/{id}/files/{name} [get]
func applicationFileLink(files service.ApplicationFileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		url, err := files.Link(c.UserContext(), pathParam(c, "id"), pathParam(c, "name"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}
