package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resumebuilder/internal/apiclient"
	"resumebuilder/internal/dashboard"
	"resumebuilder/internal/document"
	"resumebuilder/internal/editor"
	"resumebuilder/internal/http/handler/mocks"
	"resumebuilder/internal/http/middleware"
	"resumebuilder/internal/model"
	"resumebuilder/internal/preview"
	"resumebuilder/internal/service"
	serviceMocks "resumebuilder/internal/service/mocks"
	"resumebuilder/internal/session"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type testApp struct {
	app     *fiber.App
	sess    *mocks.MockSessionService
	logout  *mocks.MockLogouter
	ed      *mocks.MockEditorService
	dash    *mocks.MockDashboardService
	exports *serviceMocks.MockExportService
}

func newTestApp(t *testing.T, authenticated bool) *testApp {
	t.Helper()
	ta := &testApp{
		app:     fiber.New(fiber.Config{ErrorHandler: ErrorHandler()}),
		sess:    new(mocks.MockSessionService),
		logout:  new(mocks.MockLogouter),
		ed:      new(mocks.MockEditorService),
		dash:    new(mocks.MockDashboardService),
		exports: new(serviceMocks.MockExportService),
	}
	snap := session.Snapshot{State: session.StateAnonymous}
	if authenticated {
		snap = session.Snapshot{State: session.StateAuthenticated, User: &model.User{ID: "u1", FullName: "Ada"}}
	}
	ta.sess.On("Wait", mock.Anything).Return(nil).Maybe()
	ta.sess.On("Snapshot").Return(snap).Maybe()

	ta.app.Use(middleware.RequestID())
	RegisterRoutes(ta.app, Deps{
		Session:   ta.sess,
		Logout:    ta.logout,
		Editor:    ta.ed,
		Dashboard: ta.dash,
		Exports:   ta.exports,
		Health:    pingFunc(func(context.Context) error { return nil }),
	})
	return ta
}

func (ta *testApp) do(t *testing.T, method, path, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := ta.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantCode   string
	}{
		{name: "healthy", wantStatus: http.StatusOK},
		{name: "unhealthy", pingErr: errors.New("redis down"), wantStatus: http.StatusServiceUnavailable, wantCode: "SERVICE_UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", HealthCheck(pingFunc(func(context.Context) error { return tt.pingErr })))

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, resp).Error.Code)
			}
		})
	}
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetSession(t *testing.T) {
	ta := newTestApp(t, true)

	resp := ta.do(t, http.MethodGet, "/session", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body sessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "authenticated", body.State)
	assert.Equal(t, "u1", body.User.ID)
}

func TestSessionWaitTimeout(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	sess := new(mocks.MockSessionService)
	sess.On("Wait", mock.Anything).Return(context.DeadlineExceeded)
	RegisterRoutes(app, Deps{Session: sess, Health: pingFunc(func(context.Context) error { return nil })})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/session", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(m *mocks.MockSessionService)
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name: "success",
			body: `{"email":"ada@example.com","password":"secret1"}`,
			setupMocks: func(m *mocks.MockSessionService) {
				m.On("Login", mock.Anything, "ada@example.com", "secret1").Return(&model.User{ID: "u1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed body",
			body:       `{"email":`,
			setupMocks: func(m *mocks.MockSessionService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_BODY",
		},
		{
			name: "validation failure",
			body: `{"email":"nope","password":""}`,
			setupMocks: func(m *mocks.MockSessionService) {
				m.On("Login", mock.Anything, "nope", "").
					Return(nil, fmt.Errorf("%w: email must be a valid email", session.ErrInvalidCredentials)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name: "backend rejects credentials",
			body: `{"email":"ada@example.com","password":"wrong"}`,
			setupMocks: func(m *mocks.MockSessionService) {
				m.On("Login", mock.Anything, "ada@example.com", "wrong").
					Return(nil, &apiclient.Error{StatusCode: 401, Message: "Incorrect email or password"}).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
			wantMsg:    "Incorrect email or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, false)
			tt.setupMocks(ta.sess)

			resp := ta.do(t, http.MethodPost, "/session/login", tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantCode != "" {
				body := decodeError(t, resp)
				assert.Equal(t, tt.wantCode, body.Error.Code)
				assert.NotEmpty(t, body.RequestID)
				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, body.Error.Message)
				}
			}
			ta.sess.AssertExpectations(t)
		})
	}
}

func TestRegister(t *testing.T) {
	reg := model.Registration{FullName: "Ada", Email: "ada@example.com", Password: "secret1", ConfirmPassword: "secret1"}
	body := `{"full_name":"Ada","email":"ada@example.com","password":"secret1","confirm_password":"secret1"}`

	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantLoginNext bool
	}{
		{name: "created and logged in", wantStatus: http.StatusCreated},
		{name: "created but login failed", err: fmt.Errorf("%w: boom", session.ErrRegisteredNotLoggedIn), wantStatus: http.StatusCreated, wantLoginNext: true},
		{name: "email taken", err: &apiclient.Error{StatusCode: 400, Message: "Email already registered"}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, false)
			var user *model.User
			if tt.err == nil || errors.Is(tt.err, session.ErrRegisteredNotLoggedIn) {
				user = &model.User{ID: "u1"}
			}
			ta.sess.On("Register", mock.Anything, reg).Return(user, tt.err).Once()

			resp := ta.do(t, http.MethodPost, "/session/register", body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantStatus == http.StatusCreated {
				var out registerResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
				assert.Equal(t, tt.wantLoginNext, out.LoginRequired)
				assert.Equal(t, "u1", out.User.ID)
			} else {
				assert.Equal(t, "Email already registered", decodeError(t, resp).Error.Message)
			}
			ta.sess.AssertExpectations(t)
		})
	}
}

func TestLogout(t *testing.T) {
	ta := newTestApp(t, true)
	ta.logout.On("Logout", mock.Anything).Return(nil).Once()

	resp := ta.do(t, http.MethodPost, "/session/logout", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	ta.logout.AssertExpectations(t)
}

func TestLogout_Error(t *testing.T) {
	ta := newTestApp(t, true)
	ta.logout.On("Logout", mock.Anything).Return(editor.ErrClosed).Once()

	resp := ta.do(t, http.MethodPost, "/session/logout", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
}

func TestEditorEdits(t *testing.T) {
	base := model.NewDraft(nil)
	base.Skills = []string{"go"}

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		check      func(t *testing.T, doc model.ResumeDocument)
		wantCode   string
	}{
		{
			name:       "replace personal info",
			method:     http.MethodPut,
			path:       "/editor/personal-info",
			body:       `{"name":"Ada Lovelace","email":"ada@example.com"}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, doc model.ResumeDocument) {
				assert.Equal(t, "Ada Lovelace", doc.PersonalInfo.Name)
			},
		},
		{
			name:       "append experience",
			method:     http.MethodPost,
			path:       "/editor/sections/experience",
			body:       `{"title":"Engineer","company":"Analytical Engines"}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, doc model.ResumeDocument) {
				require.Len(t, doc.Experience, 1)
				assert.Equal(t, "Analytical Engines", doc.Experience[0].Company)
			},
		},
		{
			name:       "update skill",
			method:     http.MethodPut,
			path:       "/editor/sections/skills/0",
			body:       `"rust"`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, doc model.ResumeDocument) {
				assert.Equal(t, []string{"rust"}, doc.Skills)
			},
		},
		{
			name:       "blank skill",
			method:     http.MethodPost,
			path:       "/editor/sections/skills",
			body:       `"   "`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "remove skill",
			method:     http.MethodDelete,
			path:       "/editor/sections/skills/0",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, doc model.ResumeDocument) {
				assert.Empty(t, doc.Skills)
			},
		},
		{
			name:       "index out of range",
			method:     http.MethodDelete,
			path:       "/editor/sections/skills/4",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "bad index",
			method:     http.MethodDelete,
			path:       "/editor/sections/skills/x",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INDEX",
		},
		{
			name:       "unknown section",
			method:     http.MethodPost,
			path:       "/editor/sections/hobbies",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, false)
			ta.ed.On("Edit").Return(base, nil).Maybe()

			resp := ta.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, resp).Error.Code)
				return
			}
			var out editorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			tt.check(t, out.Document)
			assert.Equal(t, document.Completeness(out.Document), out.Completeness)
		})
	}
}

func TestSaveEditor(t *testing.T) {
	saved := model.NewDraft(nil)
	saved.ID = "r1"
	saved.PersonalInfo.Name = "Ada"

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "saved", wantStatus: http.StatusOK},
		{name: "anonymous", err: editor.ErrAuthRequired, wantStatus: http.StatusUnauthorized, wantCode: "AUTH_REQUIRED"},
		{name: "in flight", err: editor.ErrSaveInProgress, wantStatus: http.StatusConflict, wantCode: "SAVE_IN_PROGRESS"},
		{name: "invalid", err: fmt.Errorf("%w: skills.0: too short", document.ErrInvalidDocument), wantStatus: http.StatusUnprocessableEntity, wantCode: "INVALID_DOCUMENT"},
		{name: "backend failure", err: fmt.Errorf("create resume: %w", &apiclient.Error{StatusCode: 500, Message: "HTTP error! status: 500"}), wantStatus: http.StatusBadGateway, wantCode: "BACKEND_ERROR"},
		{name: "unexpected", err: errors.New("disk full"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, true)
			ta.ed.On("Save", mock.Anything).Return(saved, tt.err).Once()

			resp := ta.do(t, http.MethodPost, "/editor/save", "")
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, resp).Error.Code)
			} else {
				var out editorResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
				assert.Equal(t, "r1", out.Document.ID)
			}
			ta.ed.AssertExpectations(t)
		})
	}
}

func TestLoadEditorDocument(t *testing.T) {
	t.Run("requires auth", func(t *testing.T) {
		ta := newTestApp(t, false)
		resp := ta.do(t, http.MethodPost, "/editor/load/r1", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		ta.ed.AssertNotCalled(t, "LoadDocument", mock.Anything, mock.Anything)
	})

	t.Run("not in saved list", func(t *testing.T) {
		ta := newTestApp(t, true)
		ta.ed.On("LoadDocument", mock.Anything, "r9").Return(model.ResumeDocument{}, editor.ErrNotFound).Once()
		resp := ta.do(t, http.MethodPost, "/editor/load/r9", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestListResumes(t *testing.T) {
	ta := newTestApp(t, true)
	saved := []model.ResumeDocument{{ID: "r1"}, {ID: "r2"}}
	ta.ed.On("Refresh", mock.Anything).Return(nil).Once()
	ta.ed.On("Snapshot").Return(editor.State{Saved: saved}).Once()

	resp := ta.do(t, http.MethodGet, "/resumes", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out resumeListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, "r2", out.Items[1].ID)
}

func TestDeleteResume(t *testing.T) {
	ta := newTestApp(t, true)
	ta.ed.On("DeleteDocument", mock.Anything, "r1").Return(nil).Once()
	ta.ed.On("DeleteDocument", mock.Anything, "gone").
		Return(fmt.Errorf("delete resume: %w", &apiclient.Error{StatusCode: 404, Message: "Resume not found"})).Once()

	assert.Equal(t, http.StatusNoContent, ta.do(t, http.MethodDelete, "/resumes/r1", "").StatusCode)
	resp := ta.do(t, http.MethodDelete, "/resumes/gone", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Resume not found", decodeError(t, resp).Error.Message)
}

func TestDownloadResume(t *testing.T) {
	ta := newTestApp(t, true)
	ta.ed.On("Download", mock.Anything, "r1").
		Return(&editor.Download{Filename: "My_CV.pdf", ContentType: "application/pdf", Body: []byte("%PDF")}, nil).Once()

	resp := ta.do(t, http.MethodGet, "/resumes/r1/download", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="My_CV.pdf"`)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, []byte("%PDF"), body)
}

func TestResumesRequireAuth(t *testing.T) {
	ta := newTestApp(t, false)
	for _, path := range []string{"/resumes", "/dashboard"} {
		resp := ta.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		assert.Equal(t, "AUTH_REQUIRED", decodeError(t, resp).Error.Code)
	}
}

func TestPreview(t *testing.T) {
	doc := model.NewDraft(&model.User{FullName: "Ada"})

	t.Run("html", func(t *testing.T) {
		ta := newTestApp(t, false)
		ta.ed.On("Active").Return(doc)
		ta.exports.On("RenderHTML", mock.Anything, doc).Return([]byte("<h1>Ada</h1>"), nil).Once()

		resp := ta.do(t, http.MethodGet, "/preview", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	})

	t.Run("pdf of empty document", func(t *testing.T) {
		ta := newTestApp(t, false)
		ta.ed.On("Active").Return(model.NewDraft(nil))
		ta.exports.On("RenderPDF", mock.Anything, mock.Anything).Return(nil, preview.ErrEmptyDocument).Once()

		resp := ta.do(t, http.MethodPost, "/preview/pdf", "")
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "EMPTY_DOCUMENT", decodeError(t, resp).Error.Code)
	})

	t.Run("pdf", func(t *testing.T) {
		ta := newTestApp(t, false)
		ta.ed.On("Active").Return(doc)
		ta.exports.On("RenderPDF", mock.Anything, doc).
			Return(&service.Export{Filename: "Ada.pdf", ContentType: "application/pdf", Body: []byte("%PDF")}, nil).Once()

		resp := ta.do(t, http.MethodPost, "/preview/pdf", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "Ada.pdf")
	})

	t.Run("publish uses the session owner", func(t *testing.T) {
		ta := newTestApp(t, true)
		ta.ed.On("Active").Return(doc)
		ta.exports.On("Publish", mock.Anything, "u1", doc).
			Return(&service.Published{Key: "exports/u1/k/Ada.pdf", URL: "https://minio.local/x"}, nil).Once()

		resp := ta.do(t, http.MethodPost, "/preview/publish", "")
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var out service.Published
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "https://minio.local/x", out.URL)
	})

	t.Run("publish disabled", func(t *testing.T) {
		ta := newTestApp(t, false)
		ta.ed.On("Active").Return(doc)
		ta.exports.On("Publish", mock.Anything, "", doc).Return(nil, service.ErrPublishingDisabled).Once()

		resp := ta.do(t, http.MethodPost, "/preview/publish", "")
		assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
	})
}

func TestDashboard(t *testing.T) {
	ta := newTestApp(t, true)
	ov := dashboard.Overview{
		Total:      1,
		Resumes:    []dashboard.ResumeSummary{{ID: "r1", Completeness: 40}},
		Activities: []dashboard.ActivityItem{{Type: model.ActivityCreated, Badge: "success"}},
	}
	ta.dash.On("Overview", mock.Anything).Return(ov, nil).Once()

	resp := ta.do(t, http.MethodGet, "/dashboard", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dashboard.Overview
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "success", out.Activities[0].Badge)
}

func TestErrorHandler(t *testing.T) {
	ta := newTestApp(t, false)
	resp := ta.do(t, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
}

