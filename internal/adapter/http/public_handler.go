package http

import "github.com/gofiber/fiber/v2"

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *Handler) Contact(c *fiber.Ctx) error {
	var req contactReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := h.svc.Public.Contact(c.UserContext(), req.Name, req.Email, req.Message); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Message sent successfully"})
}

func (h *Handler) ListBlogs(c *fiber.Ctx) error {
	posts, err := h.svc.Public.Blogs(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "posts": posts})
}

func (h *Handler) GetBlog(c *fiber.Ctx) error {
	p, err := h.svc.Public.Blog(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "post": p})
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	templates, err := h.svc.Public.Templates(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "templates": templates})
}

func (h *Handler) GetTemplate(c *fiber.Ctx) error {
	t, err := h.svc.Public.Template(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "template": t})
}
