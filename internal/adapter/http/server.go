// Package http exposes the services over a fiber REST API.
package http

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"resume-builder/internal/auth"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
)

// Services are the collaborators the handlers call.
type Services struct {
	Resumes   *usecase.ResumeService
	Exports   *usecase.ExportService
	Auth      *usecase.AuthService
	Admin     *usecase.AdminService
	Public    *usecase.PublicService
	Assistant usecase.Assistant
	Users     usecase.UserRepo
	Tokens    *auth.Tokens
	Ping      func(ctx context.Context) error
}

type Options struct {
	CORSOrigins  string
	AIConfigured bool
	BodyLimit    int
}

type Handler struct {
	svc    Services
	opts   Options
	logger *slog.Logger
}

// NewApp builds the fiber application with every route registered.
func NewApp(svc Services, opts Options, logger *slog.Logger) *fiber.App {
	if opts.BodyLimit == 0 {
		opts.BodyLimit = 50 * 1024 * 1024
	}
	if opts.CORSOrigins == "" {
		opts.CORSOrigins = "*"
	}
	h := &Handler{svc: svc, opts: opts, logger: logger.With("component", "http")}

	app := fiber.New(fiber.Config{
		AppName:               "resume-builder",
		BodyLimit:             opts.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          h.errorHandler,
	})
	app.Use(requestid.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: opts.CORSOrigins, AllowHeaders: "Origin, Content-Type, Accept, Authorization"}))
	app.Use(h.requestLog)

	h.routes(app)
	return app
}

func (h *Handler) routes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("Server active") })
	app.Get("/health", h.Health)
	app.Get("/health/live", h.Live)
	app.Get("/health/ready", h.Ready)

	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", h.Register)
	authGroup.Post("/login", h.Login)
	authGroup.Post("/social-login", h.SocialLogin)
	authGroup.Post("/firebase-login", h.SocialLogin)

	resumes := app.Group("/api/resume", h.requireAuth)
	resumes.Get("/my-resumes", h.ListResumes)
	resumes.Post("/create", h.CreateResume)
	resumes.Put("/update/:id", h.UpdateResume)
	resumes.Delete("/delete/:id", h.DeleteResume)
	resumes.Get("/:id", h.GetResume)
	resumes.Post("/:id/actions", h.ApplyActions)
	resumes.Post("/:id/apply-template/:templateId", h.ApplyTemplate)
	resumes.Post("/:id/export", h.Export)
	resumes.Get("/:id/preview", h.Preview)

	app.Post("/api/export/preview-check", h.requireAuth, h.PreviewCheck)

	aiGroup := app.Group("/api/ai")
	aiGroup.Get("/health", h.AIHealth)
	aiGroup.Post("/enhance-experience", h.requireAuth, h.transform(ai.OpEnhance))
	aiGroup.Post("/ats-optimize", h.requireAuth, h.transform(ai.OpATSOptimize))
	aiGroup.Post("/grammar-check", h.requireAuth, h.transform(ai.OpGrammar))
	aiGroup.Post("/format-text", h.requireAuth, h.transform(ai.OpFormat))
	aiGroup.Post("/generate-summary", h.requireAuth, h.GenerateSummary)
	aiGroup.Post("/chat", h.requireAuth, h.Chat)
	aiGroup.Post("/analyze-resume", h.requireAuth, h.AnalyzeResume)

	admin := app.Group("/api/admin", h.requireAdmin)
	admin.Get("/stats", h.Stats)
	admin.Get("/users", h.ListUsers)
	admin.Delete("/users/:id", h.DeleteUser)
	admin.Get("/contacts", h.ListContacts)
	admin.Delete("/contacts/:id", h.DeleteContact)
	admin.Post("/blog", h.CreateBlog)
	admin.Put("/blog/:id", h.UpdateBlog)
	admin.Delete("/blog/:id", h.DeleteBlog)
	admin.Get("/templates", h.ListAllTemplates)
	admin.Post("/templates", h.CreateTemplate)
	admin.Put("/templates/:id", h.UpdateTemplate)
	admin.Delete("/templates/:id", h.DeleteTemplate)

	public := app.Group("/api/public")
	public.Post("/contact", h.Contact)
	public.Get("/blog", h.ListBlogs)
	public.Get("/blog/:id", h.GetBlog)
	public.Get("/templates", h.ListTemplates)
	public.Get("/templates/:id", h.GetTemplate)
}
