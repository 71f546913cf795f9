package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"credvault/internal/model"
	"credvault/internal/service"
)

// resourceHandler serves the five CRUD routes of one entity. Create bodies are
// decoded into C, update bodies into U.
type resourceHandler[T any, C model.Draft[T], U model.Patch] struct {
	svc service.ResourceService[T, U]
	val *Validator
}

// operations are the handlers mounted for one entity.
type operations struct {
	create fiber.Handler
	list   fiber.Handler
	find   fiber.Handler
	update fiber.Handler
	remove fiber.Handler
}

// mountResource mounts ops on r.
func mountResource(r fiber.Router, ops operations) {
	r.Post("/", ops.create)
	r.Get("/", ops.list)
	r.Get("/:key", ops.find)
	r.Put("/:id", ops.update)
	r.Delete("/:id", ops.remove)
}

// pathParam returns the named route parameter with percent-escapes decoded.
func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func (h *resourceHandler[T, C, U]) create(c *fiber.Ctx) error {
	var body C
	if err := c.BodyParser(&body); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
	}
	if details := h.val.Struct(&body); details != nil {
		return writeValidationError(c, details)
	}

	created, err := h.svc.Create(c.UserContext(), body.Record())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *resourceHandler[T, C, U]) list(c *fiber.Ctx) error {
	items, err := h.svc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(items)
}

func (h *resourceHandler[T, C, U]) find(c *fiber.Ctx) error {
	rec, err := h.svc.Find(c.UserContext(), pathParam(c, "key"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(rec)
}

func (h *resourceHandler[T, C, U]) update(c *fiber.Ctx) error {
	var patch U
	if err := c.BodyParser(&patch); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
	}
	if details := h.val.Struct(&patch); details != nil {
		return writeValidationError(c, details)
	}

	rec, err := h.svc.Update(c.UserContext(), pathParam(c, "id"), patch)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(rec)
}

func (h *resourceHandler[T, C, U]) delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), pathParam(c, "id")); err != nil {
		return writeServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
