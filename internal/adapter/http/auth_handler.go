package http

import (
	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/domain"
)

type credentialsReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Picture  string `json:"picture"`
}

type userView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Picture string `json:"picture,omitempty"`
}

func viewOf(u *domain.User) userView {
	return userView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Picture: u.Picture}
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var req credentialsReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	sess, err := h.svc.Auth.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Registration successful", "user": viewOf(sess.User), "token": sess.Token})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req credentialsReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	sess, err := h.svc.Auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Login successful", "user": viewOf(sess.User), "token": sess.Token})
}

func (h *Handler) SocialLogin(c *fiber.Ctx) error {
	var req credentialsReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	sess, err := h.svc.Auth.SocialLogin(c.UserContext(), req.Email, req.Name, req.Picture)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "user": viewOf(sess.User), "token": sess.Token})
}
