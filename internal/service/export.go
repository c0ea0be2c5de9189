package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"resumebuilder/internal/logger"
	"resumebuilder/internal/model"
	"resumebuilder/internal/preview"
	"resumebuilder/internal/storage"
)

var ErrPublishingDisabled = errors.New("export publishing is not configured")

const pdfContentType = "application/pdf"

// Export is a client-side rendered PDF.
type Export struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"-"`
}

// Published is an export uploaded to object storage.
type Published struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Filename  string    `json:"filename"`
	Size      int64     `json:"size"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ExportService renders the preview of a document and turns it into a PDF.
// The PDF is always produced from the rendered page, never from the
// document directly.
type ExportService interface {
	RenderHTML(ctx context.Context, doc model.ResumeDocument) ([]byte, error)

	// RenderPDF refuses documents without a name, experience or education.
	RenderPDF(ctx context.Context, doc model.ResumeDocument) (*Export, error)

	// Publish uploads the PDF under owner and returns a presigned link.
	// The object is removed again when the link cannot be created.
	Publish(ctx context.Context, owner string, doc model.ResumeDocument) (*Published, error)
}

type exportService struct {
	renderer *preview.Renderer
	pdf      preview.PDFConverter
	store    storage.Storage
	expiry   time.Duration
	now      func() time.Time
}

// NewExportService constructs an ExportService. store may be nil, in which
// case Publish returns ErrPublishingDisabled.
func NewExportService(renderer *preview.Renderer, pdf preview.PDFConverter, store storage.Storage, expiry time.Duration) ExportService {
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &exportService{renderer: renderer, pdf: pdf, store: store, expiry: expiry, now: time.Now}
}

func (s *exportService) RenderHTML(_ context.Context, doc model.ResumeDocument) ([]byte, error) {
	return s.renderer.Render(doc)
}

func (s *exportService) RenderPDF(ctx context.Context, doc model.ResumeDocument) (*Export, error) {
	if err := preview.CheckExportable(doc); err != nil {
		return nil, err
	}
	html, err := s.renderer.Render(doc)
	if err != nil {
		return nil, err
	}
	pdf, err := s.pdf.ConvertHTML(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("convert to pdf: %w", err)
	}
	return &Export{
		Filename:    preview.ExportFilename(doc),
		ContentType: pdfContentType,
		Body:        pdf,
	}, nil
}

func (s *exportService) Publish(ctx context.Context, owner string, doc model.ResumeDocument) (*Published, error) {
	if s.store == nil {
		return nil, ErrPublishingDisabled
	}
	exp, err := s.RenderPDF(ctx, doc)
	if err != nil {
		return nil, err
	}

	now := s.now()
	key := storage.ExportKey(owner, exp.Filename, now)
	info, err := s.store.Put(ctx, key, bytes.NewReader(exp.Body), storage.PutOptions{
		Size:        int64(len(exp.Body)),
		ContentType: exp.ContentType,
		Filename:    exp.Filename,
		Metadata: map[string]string{
			"resume-id": doc.ID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	url, err := s.store.PresignGet(ctx, info.Key, s.expiry)
	if err != nil {
		if delErr := s.store.Delete(ctx, info.Key); delErr != nil {
			return nil, fmt.Errorf("presign failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign failed: %w", err)
	}

	log := logger.Component("export")
	log.Info().
		Str("key", info.Key).
		Str("resume_id", doc.ID).
		Int64("size", info.Size).
		Msg("export published")

	return &Published{
		Key:       info.Key,
		URL:       url,
		Filename:  exp.Filename,
		Size:      info.Size,
		ExpiresAt: now.Add(s.expiry).UTC(),
	}, nil
}
