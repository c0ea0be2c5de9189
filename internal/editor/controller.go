// Package editor owns the active resume draft and keeps it in step with
// the saved list on the backend and the recovery slot in the local store.
package editor

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"resumebuilder/internal/apiclient"
	"resumebuilder/internal/document"
	"resumebuilder/internal/localstore"
	"resumebuilder/internal/logger"
	"resumebuilder/internal/model"
)

var (
	ErrAuthRequired   = errors.New("authentication required")
	ErrSaveInProgress = errors.New("a save is already in progress")
	ErrNotFound       = errors.New("resume not found in saved list")
	ErrNotSaved       = errors.New("no resume selected, save the resume first")
	ErrClosed         = errors.New("editor closed")
)

// Backend is the slice of the remote client used by the controller.
type Backend interface {
	ListResumes(ctx context.Context) ([]model.ResumeDocument, error)
	CreateResume(ctx context.Context, doc model.ResumeDocument) (*model.ResumeDocument, error)
	UpdateResume(ctx context.Context, id string, doc model.ResumeDocument) (*model.ResumeDocument, error)
	DeleteResume(ctx context.Context, id string) error
	DownloadResume(ctx context.Context, id string) (*apiclient.Download, error)
}

// Identity reports the authenticated user, or nil.
type Identity interface {
	User() *model.User
}

// State is a copy of the controller state.
type State struct {
	Active     model.ResumeDocument   `json:"active"`
	Saved      []model.ResumeDocument `json:"saved"`
	Saving     bool                   `json:"saving"`
	RecoveryID string                 `json:"recovery_id,omitempty"`
}

// Controller is safe for concurrent use. No lock is held across backend
// calls; at most one Save runs at a time and a concurrent call fails with
// ErrSaveInProgress.
type Controller struct {
	mu    sync.Mutex
	doc   model.ResumeDocument
	saved []model.ResumeDocument
	// recoveryID is the identifier read from the local store that has not
	// yet been matched against a fetched list.
	recoveryID string
	saving     bool
	// generation changes whenever the active draft is replaced wholesale,
	// so a save that started on an older draft does not adopt identity
	// into the new one.
	generation uint64
	closed     bool

	backend  Backend
	identity Identity
	slots    localstore.Store
	metrics  *Metrics
	now      func() time.Time
	log      zerolog.Logger
}

type Option func(*Controller)

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func WithMetrics(m *Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// New returns a controller holding an empty draft.
func New(backend Backend, identity Identity, slots localstore.Store, opts ...Option) *Controller {
	c := &Controller{
		doc:      model.NewDraft(nil),
		saved:    []model.ResumeDocument{},
		backend:  backend,
		identity: identity,
		slots:    slots,
		now:      time.Now,
		log:      logger.Component("editor"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// absentIDs are recovery slot values left behind by earlier clients that
// stored a missing identifier as text.
var absentIDs = map[string]bool{"": true, "null": true, "undefined": true}

// Recover reads the recovery identifier. It is resolved against the saved
// list on the next Sync.
func (c *Controller) Recover(ctx context.Context) error {
	id, err := c.slots.Get(ctx, localstore.KeyCurrentResumeID)
	if err != nil {
		return fmt.Errorf("read recovery id: %w", err)
	}
	if absentIDs[id] {
		id = ""
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.recoveryID = id
	if id != "" {
		c.log.Debug().Str("resume_id", id).Msg("recovery id loaded")
	}
	return nil
}

// Sync runs when the session becomes authenticated. It fetches the saved
// list and selects the active document: the recovered entry when it is in
// the list, else the last entry. With an empty list the draft is kept and
// pre-filled from user.
func (c *Controller) Sync(ctx context.Context, user model.User) error {
	list, err := c.backend.ListResumes(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to load saved resumes")
		return fmt.Errorf("load saved resumes: %w", err)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.saved = list

	var selected string
	if entry, ok := findSaved(list, c.recoveryID); ok {
		selected = entry.ID
	} else if len(list) > 0 {
		selected = list[len(list)-1].ID
	}
	c.recoveryID = ""

	if selected != "" {
		entry, _ := findSaved(list, selected)
		c.doc = entry.Clone()
		c.generation++
	} else if !c.doc.IsSaved() && c.doc.PersonalInfo.Name == "" {
		c.doc.PersonalInfo.Name = user.FullName
		c.doc.PersonalInfo.Email = user.Email
	}
	c.mu.Unlock()

	if selected != "" {
		c.log.Info().Str("resume_id", selected).Int("saved", len(list)).Msg("active resume selected")
		return c.setRecovery(ctx, selected)
	}
	return nil
}

// Refresh reloads the saved list without touching the active draft.
func (c *Controller) Refresh(ctx context.Context) error {
	list, err := c.backend.ListResumes(ctx)
	if err != nil {
		return fmt.Errorf("refresh saved resumes: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.saved = list
	return nil
}

// Save persists the active draft: update when it has an identity, create
// otherwise. A created identity is adopted and written to the recovery
// slot. On failure the controller state is unchanged.
func (c *Controller) Save(ctx context.Context) (model.ResumeDocument, error) {
	mode := "create"
	if c.identity.User() == nil {
		c.metrics.observeSave(mode, "auth_required")
		return model.ResumeDocument{}, ErrAuthRequired
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return model.ResumeDocument{}, ErrClosed
	}
	if c.doc.IsSaved() {
		mode = "update"
	}
	if c.saving {
		c.mu.Unlock()
		c.metrics.observeSave(mode, "in_progress")
		return model.ResumeDocument{}, ErrSaveInProgress
	}
	c.saving = true
	gen := c.generation
	snapshot := c.doc.Clone()
	snapshot.VersionName = c.versionNameLocked(snapshot)
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.saving = false
		c.mu.Unlock()
	}()

	if err := document.Validate(snapshot); err != nil {
		c.metrics.observeSave(mode, "invalid")
		return model.ResumeDocument{}, err
	}

	var (
		out *model.ResumeDocument
		err error
	)
	if snapshot.IsSaved() {
		out, err = c.backend.UpdateResume(ctx, snapshot.ID, snapshot)
	} else {
		out, err = c.backend.CreateResume(ctx, snapshot)
	}
	if err != nil {
		c.metrics.observeSave(mode, "failure")
		c.log.Error().Err(err).Str("mode", mode).Str("resume_id", snapshot.ID).Msg("save failed")
		return model.ResumeDocument{}, fmt.Errorf("save resume: %w", err)
	}
	if out == nil {
		c.metrics.observeSave(mode, "failure")
		return model.ResumeDocument{}, fmt.Errorf("save resume: backend returned no resume")
	}
	if out.ID == "" {
		out.ID = snapshot.ID
	}
	if out.ID == "" {
		c.metrics.observeSave(mode, "failure")
		return model.ResumeDocument{}, fmt.Errorf("save resume: backend returned no identity")
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.log.Info().Str("resume_id", out.ID).Msg("editor closed during save, result discarded")
		return model.ResumeDocument{}, ErrClosed
	}
	adopt := c.generation == gen
	if adopt {
		c.doc.ID = out.ID
		c.doc.UserID = out.UserID
		c.doc.VersionName = out.VersionName
		c.doc.CreatedAt = out.CreatedAt
		c.doc.UpdatedAt = out.UpdatedAt
	}
	c.mu.Unlock()

	if adopt {
		if err := c.setRecovery(ctx, out.ID); err != nil {
			c.log.Error().Err(err).Str("resume_id", out.ID).Msg("failed to persist recovery id")
		}
	}
	if err := c.Refresh(ctx); err != nil {
		c.log.Warn().Err(err).Msg("saved list refresh after save failed")
	}

	c.metrics.observeSave(mode, "success")
	c.log.Info().Str("mode", mode).Str("resume_id", out.ID).Msg("resume saved")
	return *out, nil
}

// versionNameLocked picks the label sent with a save: the saved entry's
// name for an update, else the draft's own, else a timestamped default.
func (c *Controller) versionNameLocked(d model.ResumeDocument) string {
	if d.IsSaved() {
		if entry, ok := findSaved(c.saved, d.ID); ok && entry.VersionName != "" {
			return entry.VersionName
		}
	}
	if d.VersionName != "" {
		return d.VersionName
	}
	return "Resume " + c.now().Format("2006-01-02 15:04:05")
}

// NewDocument replaces the active draft with an empty one and clears the
// recovery slot. No network call is made.
func (c *Controller) NewDocument(ctx context.Context) (model.ResumeDocument, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return model.ResumeDocument{}, ErrClosed
	}
	c.doc = model.NewDraft(c.identity.User())
	c.generation++
	c.recoveryID = ""
	out := c.doc.Clone()
	c.mu.Unlock()

	if err := c.clearRecovery(ctx); err != nil {
		return out, err
	}
	return out, nil
}

// LoadDocument makes the saved entry id the active draft. The entry comes
// from the last fetched list; the backend is not contacted.
func (c *Controller) LoadDocument(ctx context.Context, id string) (model.ResumeDocument, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return model.ResumeDocument{}, ErrClosed
	}
	entry, ok := findSaved(c.saved, id)
	if !ok {
		c.mu.Unlock()
		return model.ResumeDocument{}, ErrNotFound
	}
	c.doc = entry.Clone()
	c.generation++
	out := c.doc.Clone()
	c.mu.Unlock()

	if err := c.setRecovery(ctx, id); err != nil {
		return out, err
	}
	return out, nil
}

// DeleteDocument deletes a saved resume. Confirmation is the caller's
// responsibility. Deleting the active document resets the draft and
// clears the recovery slot.
func (c *Controller) DeleteDocument(ctx context.Context, id string) error {
	user := c.identity.User()
	if user == nil {
		return ErrAuthRequired
	}
	if id == "" {
		return ErrNotFound
	}

	if err := c.backend.DeleteResume(ctx, id); err != nil {
		c.log.Error().Err(err).Str("resume_id", id).Msg("delete failed")
		return fmt.Errorf("delete resume: %w", err)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	kept := make([]model.ResumeDocument, 0, len(c.saved))
	for _, r := range c.saved {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	c.saved = kept

	wasActive := c.doc.ID == id
	if wasActive {
		c.doc = model.NewDraft(user)
		c.generation++
	}
	c.mu.Unlock()

	c.log.Info().Str("resume_id", id).Bool("was_active", wasActive).Msg("resume deleted")
	if wasActive {
		return c.clearRecovery(ctx)
	}
	return nil
}

// Download is a server-rendered export ready to be written to a file.
type Download struct {
	Filename    string
	ContentType string
	Body        []byte
}

var whitespace = regexp.MustCompile(`\s+`)

// Download fetches the backend export of id, or of the active document
// when id is empty.
func (c *Controller) Download(ctx context.Context, id string) (*Download, error) {
	if c.identity.User() == nil {
		return nil, ErrAuthRequired
	}

	c.mu.Lock()
	if id == "" {
		id = c.doc.ID
	}
	filename := "resume.pdf"
	if entry, ok := findSaved(c.saved, id); ok && entry.VersionName != "" {
		filename = whitespace.ReplaceAllString(entry.VersionName, "_") + ".pdf"
	}
	c.mu.Unlock()

	if id == "" {
		return nil, ErrNotSaved
	}

	d, err := c.backend.DownloadResume(ctx, id)
	if err != nil {
		c.log.Error().Err(err).Str("resume_id", id).Msg("download failed")
		return nil, fmt.Errorf("download resume: %w", err)
	}
	return &Download{Filename: filename, ContentType: d.ContentType, Body: d.Body}, nil
}

// Edit applies fn to a copy of the active draft and commits the result.
// The identity cannot be changed through Edit.
func (c *Controller) Edit(fn func(model.ResumeDocument) (model.ResumeDocument, error)) (model.ResumeDocument, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return model.ResumeDocument{}, ErrClosed
	}

	next, err := fn(c.doc.Clone())
	if err != nil {
		return model.ResumeDocument{}, err
	}
	next.Normalize()
	next.ID = c.doc.ID
	next.UserID = c.doc.UserID
	next.CreatedAt = c.doc.CreatedAt
	next.UpdatedAt = c.doc.UpdatedAt
	c.doc = next
	return c.doc.Clone(), nil
}

// Active returns a copy of the active draft.
func (c *Controller) Active() model.ResumeDocument {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc.Clone()
}

func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	saved := make([]model.ResumeDocument, len(c.saved))
	for i, r := range c.saved {
		saved[i] = r.Clone()
	}
	return State{
		Active:     c.doc.Clone(),
		Saved:      saved,
		Saving:     c.saving,
		RecoveryID: c.recoveryID,
	}
}

// Reset drops all in-memory state and re-reads the recovery slot. A save
// still in flight will not adopt its identity into the new draft.
func (c *Controller) Reset(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.doc = model.NewDraft(nil)
	c.saved = []model.ResumeDocument{}
	c.generation++
	c.mu.Unlock()

	return c.Recover(ctx)
}

// Close tears the controller down. Results of in-flight calls are
// discarded and every later call returns ErrClosed.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *Controller) setRecovery(ctx context.Context, id string) error {
	if err := c.slots.Set(ctx, localstore.KeyCurrentResumeID, id); err != nil {
		return fmt.Errorf("persist recovery id: %w", err)
	}
	return nil
}

func (c *Controller) clearRecovery(ctx context.Context) error {
	if err := c.slots.Delete(ctx, localstore.KeyCurrentResumeID); err != nil {
		return fmt.Errorf("clear recovery id: %w", err)
	}
	return nil
}

func findSaved(list []model.ResumeDocument, id string) (model.ResumeDocument, bool) {
	if id == "" {
		return model.ResumeDocument{}, false
	}
	for _, r := range list {
		if r.ID == id {
			return r, true
		}
	}
	return model.ResumeDocument{}, false
}
