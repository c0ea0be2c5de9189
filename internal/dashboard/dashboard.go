// Package dashboard aggregates the saved resumes and recent activity of
// the current user into a read-only overview.
package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"resumebuilder/internal/document"
	"resumebuilder/internal/model"
)

const DefaultActivityLimit = 10

type ResumeSummary struct {
	ID           string          `json:"id"`
	VersionName  string          `json:"version_name"`
	Completeness int             `json:"completeness"`
	UpdatedAt    model.Timestamp `json:"updated_at"`
}

type ActivityItem struct {
	Type      model.ActivityType `json:"type"`
	Badge     string             `json:"badge"`
	Details   string             `json:"details"`
	Timestamp model.Timestamp    `json:"timestamp"`
}

type Overview struct {
	Total        int             `json:"total"`
	Resumes      []ResumeSummary `json:"resumes"`
	MostComplete *ResumeSummary  `json:"most_complete,omitempty"`
	Activities   []ActivityItem  `json:"activities"`
}

// BadgeClass maps an activity type onto its display style.
func BadgeClass(t model.ActivityType) string {
	switch t {
	case model.ActivityCreated:
		return "success"
	case model.ActivityUpdated:
		return "primary"
	case model.ActivityDownloaded:
		return "info"
	default:
		return "secondary"
	}
}

// Build is pure. The most complete resume is the first with the highest
// score; it is nil when there are no resumes.
func Build(resumes []model.ResumeDocument, activities []model.ActivityRecord) Overview {
	out := Overview{
		Total:      len(resumes),
		Resumes:    make([]ResumeSummary, 0, len(resumes)),
		Activities: make([]ActivityItem, 0, len(activities)),
	}

	best := -1
	for i, r := range resumes {
		s := ResumeSummary{
			ID:           r.ID,
			VersionName:  r.VersionName,
			Completeness: document.Completeness(r),
			UpdatedAt:    r.UpdatedAt,
		}
		out.Resumes = append(out.Resumes, s)
		if best < 0 || s.Completeness > out.Resumes[best].Completeness {
			best = i
		}
	}
	if best >= 0 {
		mc := out.Resumes[best]
		out.MostComplete = &mc
	}

	for _, a := range activities {
		out.Activities = append(out.Activities, ActivityItem{
			Type:      a.Type,
			Badge:     BadgeClass(a.Type),
			Details:   a.Details,
			Timestamp: a.Timestamp,
		})
	}
	return out
}

// Source is the slice of the backend client read by the dashboard.
type Source interface {
	ListResumes(ctx context.Context) ([]model.ResumeDocument, error)
	RecentActivities(ctx context.Context, limit int) ([]model.ActivityRecord, error)
}

type Service struct {
	src   Source
	limit int
}

func NewService(src Source, activityLimit int) *Service {
	if activityLimit <= 0 {
		activityLimit = DefaultActivityLimit
	}
	return &Service{src: src, limit: activityLimit}
}

// Overview fetches resumes and activities concurrently.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	var (
		resumes    []model.ResumeDocument
		activities []model.ActivityRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resumes, err = s.src.ListResumes(gctx)
		if err != nil {
			return fmt.Errorf("list resumes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		activities, err = s.src.RecentActivities(gctx, s.limit)
		if err != nil {
			return fmt.Errorf("recent activities: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}

	return Build(resumes, activities), nil
}
