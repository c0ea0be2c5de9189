package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"resumebuilder/internal/model"
)

// resumePayload is the writable part of a ResumeDocument. Identity, owner
// and timestamps are assigned by the backend.
type resumePayload struct {
	VersionName  string              `json:"version_name"`
	PersonalInfo model.PersonalInfo  `json:"personal_info"`
	Experience   []model.Experience  `json:"experience"`
	Education    []model.Education   `json:"education"`
	Skills       []string            `json:"skills"`
	Projects     []model.Project     `json:"projects"`
	Certificates []model.Certificate `json:"certificates"`
	Achievements []model.Achievement `json:"achievements"`
	Links        []model.Link        `json:"links"`
}

func newResumePayload(doc model.ResumeDocument) resumePayload {
	d := doc.Clone()
	return resumePayload{
		VersionName:  d.VersionName,
		PersonalInfo: d.PersonalInfo,
		Experience:   d.Experience,
		Education:    d.Education,
		Skills:       d.Skills,
		Projects:     d.Projects,
		Certificates: d.Certificates,
		Achievements: d.Achievements,
		Links:        d.Links,
	}
}

// Download is a binary resume export.
type Download struct {
	Body        []byte
	ContentType string
}

func resumePath(id string) string {
	return "/api/resumes/" + url.PathEscape(id)
}

// ListResumes returns the saved resumes of the current user in backend order.
func (c *Client) ListResumes(ctx context.Context) ([]model.ResumeDocument, error) {
	var out []model.ResumeDocument
	if err := c.getJSON(ctx, request{method: http.MethodGet, path: "/api/resumes/"}, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.ResumeDocument{}
	}
	return out, nil
}

func (c *Client) GetResume(ctx context.Context, id string) (*model.ResumeDocument, error) {
	if id == "" {
		return nil, fmt.Errorf("resume id is required")
	}
	var out model.ResumeDocument
	if err := c.getJSON(ctx, request{method: http.MethodGet, path: resumePath(id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateResume persists doc as a new resume and returns it with the
// backend-assigned identity.
func (c *Client) CreateResume(ctx context.Context, doc model.ResumeDocument) (*model.ResumeDocument, error) {
	body, err := jsonBody(newResumePayload(doc))
	if err != nil {
		return nil, err
	}
	var out model.ResumeDocument
	if err := c.getJSON(ctx, request{method: http.MethodPost, path: "/api/resumes/", body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateResume(ctx context.Context, id string, doc model.ResumeDocument) (*model.ResumeDocument, error) {
	if id == "" {
		return nil, fmt.Errorf("resume id is required")
	}
	body, err := jsonBody(newResumePayload(doc))
	if err != nil {
		return nil, err
	}
	var out model.ResumeDocument
	if err := c.getJSON(ctx, request{method: http.MethodPut, path: resumePath(id), body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteResume(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("resume id is required")
	}
	return c.getJSON(ctx, request{method: http.MethodDelete, path: resumePath(id)}, nil)
}

// DownloadResume returns the server-rendered PDF of a saved resume.
func (c *Client) DownloadResume(ctx context.Context, id string) (*Download, error) {
	if id == "" {
		return nil, fmt.Errorf("resume id is required")
	}
	body, header, err := c.do(ctx, request{
		method:  http.MethodGet,
		path:    resumePath(id) + "/download",
		failure: "Download failed",
	})
	if err != nil {
		return nil, err
	}
	ct := header.Get("Content-Type")
	if ct == "" {
		ct = "application/pdf"
	}
	return &Download{Body: body, ContentType: ct}, nil
}

// RecentActivities returns at most limit activity records, newest first.
func (c *Client) RecentActivities(ctx context.Context, limit int) ([]model.ActivityRecord, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []model.ActivityRecord
	if err := c.getJSON(ctx, request{
		method: http.MethodGet,
		path:   "/api/resumes/activities/recent",
		query:  q,
	}, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.ActivityRecord{}
	}
	return out, nil
}
