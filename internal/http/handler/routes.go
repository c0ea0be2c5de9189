package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"resumebuilder/internal/http/middleware"
	"resumebuilder/internal/service"
)

// Deps are the workspace components served over HTTP.
type Deps struct {
	Session   SessionService
	Logout    Logouter
	Editor    EditorService
	Dashboard DashboardService
	Exports   service.ExportService
	Health    Pinger
	// SessionWait bounds how long a request waits for the session to settle.
	SessionWait time.Duration
}

// RegisterRoutes attaches every workspace route to app. Probes answer
// immediately; everything else waits for the session to leave the
// checking state.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.Health))
	app.Get("/healthz", LivenessProbe())

	wait := d.SessionWait
	if wait <= 0 {
		wait = 10 * time.Second
	}
	ready := middleware.WaitForSession(d.Session, wait)
	auth := RequireAuth(d.Session)

	app.Get("/session", ready, GetSession(d.Session))
	app.Post("/session/login", ready, Login(d.Session))
	app.Post("/session/register", ready, Register(d.Session))
	app.Post("/session/logout", ready, Logout(d.Logout))

	ed := app.Group("/editor", ready)
	ed.Get("/", GetEditor(d.Editor))
	ed.Put("/personal-info", UpdatePersonalInfo(d.Editor))
	ed.Post("/sections/:section", AppendSectionItem(d.Editor))
	ed.Put("/sections/:section/:index", UpdateSectionItem(d.Editor))
	ed.Delete("/sections/:section/:index", RemoveSectionItem(d.Editor))
	ed.Post("/save", SaveEditor(d.Editor))
	ed.Post("/new", NewEditorDocument(d.Editor))
	ed.Post("/load/:id", auth, LoadEditorDocument(d.Editor))

	res := app.Group("/resumes", ready, auth)
	res.Get("/", ListResumes(d.Editor))
	res.Delete("/:id", DeleteResume(d.Editor))
	res.Get("/:id/download", DownloadResume(d.Editor))

	pv := app.Group("/preview", ready)
	pv.Get("/", Preview(d.Editor, d.Exports))
	pv.Post("/pdf", PreviewPDF(d.Editor, d.Exports))
	pv.Post("/publish", PublishPreview(d.Session, d.Editor, d.Exports))

	app.Get("/dashboard", ready, auth, Dashboard(d.Dashboard))
}
