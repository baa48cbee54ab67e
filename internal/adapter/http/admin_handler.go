package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Stats(c *fiber.Ctx) error {
	st, err := h.svc.Admin.Stats(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "stats": st})
}

func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.svc.Admin.Users(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "users": users})
}

func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	if err := h.svc.Admin.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "User deleted"})
}

func (h *Handler) ListContacts(c *fiber.Ctx) error {
	contacts, err := h.svc.Admin.Contacts(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "contacts": contacts})
}

func (h *Handler) DeleteContact(c *fiber.Ctx) error {
	if err := h.svc.Admin.DeleteContact(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Message deleted"})
}

func (h *Handler) CreateBlog(c *fiber.Ctx) error {
	p, err := h.svc.Admin.CreateBlog(c.UserContext(), json.RawMessage(c.Body()))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "post": p})
}

func (h *Handler) UpdateBlog(c *fiber.Ctx) error {
	p, err := h.svc.Admin.UpdateBlog(c.UserContext(), c.Params("id"), json.RawMessage(c.Body()))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "post": p})
}

func (h *Handler) DeleteBlog(c *fiber.Ctx) error {
	if err := h.svc.Admin.DeleteBlog(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Post deleted"})
}

func (h *Handler) ListAllTemplates(c *fiber.Ctx) error {
	templates, err := h.svc.Admin.Templates(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "templates": templates})
}

func (h *Handler) CreateTemplate(c *fiber.Ctx) error {
	t, err := h.svc.Admin.CreateTemplate(c.UserContext(), json.RawMessage(c.Body()))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "template": t})
}

func (h *Handler) UpdateTemplate(c *fiber.Ctx) error {
	t, err := h.svc.Admin.UpdateTemplate(c.UserContext(), c.Params("id"), json.RawMessage(c.Body()))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "template": t})
}

func (h *Handler) DeleteTemplate(c *fiber.Ctx) error {
	if err := h.svc.Admin.DeleteTemplate(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Template deleted"})
}
