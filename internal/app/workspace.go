// Package app wires the client components into a Workspace: one session,
// one editor and the services reading from them, backed by a single
// durable local store.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"resumebuilder/internal/apiclient"
	"resumebuilder/internal/config"
	"resumebuilder/internal/dashboard"
	"resumebuilder/internal/editor"
	"resumebuilder/internal/localstore"
	"resumebuilder/internal/logger"
	"resumebuilder/internal/model"
	"resumebuilder/internal/preview"
	"resumebuilder/internal/service"
	"resumebuilder/internal/session"
	"resumebuilder/internal/storage"
)

// Workspace owns every long-lived component. Reset stands in for a full
// reload: in-memory state is dropped and rebuilt from the local store.
type Workspace struct {
	Store     localstore.Store
	Client    *apiclient.Client
	Session   *session.Store
	Editor    *editor.Controller
	Dashboard *dashboard.Service
	Exports   service.ExportService
	Renderer  *preview.Renderer

	resetting atomic.Bool
	log       zerolog.Logger
}

type options struct {
	store     localstore.Store
	converter preview.PDFConverter
	objects   storage.Storage
	registry  prometheus.Registerer
}

type Option func(*options)

// WithStore replaces the store selected by configuration.
func WithStore(s localstore.Store) Option {
	return func(o *options) { o.store = s }
}

func WithPDFConverter(c preview.PDFConverter) Option {
	return func(o *options) { o.converter = c }
}

// WithObjectStorage enables publishing without a MinIO configuration.
func WithObjectStorage(s storage.Storage) Option {
	return func(o *options) { o.objects = s }
}

func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *options) { o.registry = r }
}

// New builds a workspace from cfg. Nothing talks to the backend until Start.
func New(ctx context.Context, cfg *config.AppConfig, opts ...Option) (*Workspace, error) {
	o := options{registry: prometheus.DefaultRegisterer}
	for _, opt := range opts {
		opt(&o)
	}

	store := o.store
	if store == nil {
		var err error
		store, err = localstore.Open(ctx, cfg.LocalStore)
		if err != nil {
			return nil, fmt.Errorf("open local store: %w", err)
		}
	}

	objects := o.objects
	if objects == nil && cfg.Export.PublishingEnabled() {
		var err error
		objects, err = storage.NewMinIO(ctx, cfg.Export.MinIO)
		if err != nil {
			_ = localstore.Closer(store).Close()
			return nil, fmt.Errorf("init object storage: %w", err)
		}
	}

	renderer, err := preview.NewRenderer()
	if err != nil {
		_ = localstore.Closer(store).Close()
		return nil, err
	}

	metrics, err := editor.NewMetrics(o.registry)
	if err != nil {
		_ = localstore.Closer(store).Close()
		return nil, fmt.Errorf("register editor metrics: %w", err)
	}

	converter := o.converter
	if converter == nil {
		converter = preview.NewChromedpConverter(cfg.Export.ChromePath, 0)
	}

	ws := &Workspace{
		Store:    store,
		Renderer: renderer,
		log:      logger.Component("workspace"),
	}
	ws.Client = apiclient.New(cfg.Backend.BaseURL, store,
		apiclient.WithTimeout(time.Duration(cfg.Backend.TimeoutSec)*time.Second),
		apiclient.WithUnauthorizedHandler(func(ctx context.Context) {
			if err := ws.Reset(ctx); err != nil {
				ws.log.Error().Err(err).Msg("reset after unauthorized response failed")
			}
		}),
	)
	ws.Session = session.New(ws.Client, store)
	ws.Editor = editor.New(ws.Client, ws.Session, store, editor.WithMetrics(metrics))
	ws.Dashboard = dashboard.NewService(ws.Client, cfg.Backend.ActivityLimit)
	ws.Exports = service.NewExportService(renderer, converter, objects,
		time.Duration(cfg.Export.URLExpirySec)*time.Second)

	return ws, nil
}

// Start recovers the editor and resolves the stored credential. The
// editor syncs with the backend every time the session authenticates.
func (w *Workspace) Start(ctx context.Context) error {
	w.Session.OnAuthenticated(func(ctx context.Context, user model.User) {
		if err := w.Editor.Sync(ctx, user); err != nil {
			w.log.Error().Err(err).Str("user_id", user.ID).Msg("editor sync failed")
		}
	})
	if err := w.Editor.Recover(ctx); err != nil {
		return err
	}
	return w.Session.Init(ctx)
}

// Reset drops session and editor state and re-initializes them from the
// local store. A reset triggered while another one runs is ignored.
func (w *Workspace) Reset(ctx context.Context) error {
	if !w.resetting.CompareAndSwap(false, true) {
		return nil
	}
	defer w.resetting.Store(false)

	w.log.Info().Msg("resetting workspace")
	w.Session.Expire(ctx)
	if err := w.Editor.Reset(ctx); err != nil {
		return err
	}
	return w.Session.Init(ctx)
}

// Logout discards the credential and replaces the active document with an
// empty draft, so the next user to log in does not inherit it. The
// recovery id stays in the local store.
func (w *Workspace) Logout(ctx context.Context) error {
	logoutErr := w.Session.Logout(ctx)
	if err := w.Editor.Reset(ctx); err != nil {
		return err
	}
	return logoutErr
}

// Ping checks the local store when it is backed by a server.
func (w *Workspace) Ping(ctx context.Context) error {
	if p, ok := w.Store.(localstore.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (w *Workspace) Close() error {
	w.Editor.Close()
	err := localstore.Closer(w.Store).Close()
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("close local store: %w", err)
	}
	return nil
}
