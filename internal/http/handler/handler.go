// Package handler exposes the workspace over HTTP.
package handler

import (
	"context"

	"resumebuilder/internal/dashboard"
	"resumebuilder/internal/editor"
	"resumebuilder/internal/model"
	"resumebuilder/internal/session"
)

type SessionService interface {
	Snapshot() session.Snapshot
	Wait(ctx context.Context) error
	Login(ctx context.Context, email, password string) (*model.User, error)
	Register(ctx context.Context, reg model.Registration) (*model.User, error)
}

// Logouter ends the session together with the editor state that belongs
// to it.
type Logouter interface {
	Logout(ctx context.Context) error
}

type EditorService interface {
	Snapshot() editor.State
	Active() model.ResumeDocument
	Edit(fn func(model.ResumeDocument) (model.ResumeDocument, error)) (model.ResumeDocument, error)
	Save(ctx context.Context) (model.ResumeDocument, error)
	NewDocument(ctx context.Context) (model.ResumeDocument, error)
	LoadDocument(ctx context.Context, id string) (model.ResumeDocument, error)
	DeleteDocument(ctx context.Context, id string) error
	Download(ctx context.Context, id string) (*editor.Download, error)
	Refresh(ctx context.Context) error
}

type DashboardService interface {
	Overview(ctx context.Context) (dashboard.Overview, error)
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

var (
	_ SessionService   = (*session.Store)(nil)
	_ EditorService    = (*editor.Controller)(nil)
	_ DashboardService = (*dashboard.Service)(nil)
)
