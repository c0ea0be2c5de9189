package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumebuilder/internal/localstore"
	"resumebuilder/internal/model"
)

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) (*Client, *localstore.Memory) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	store := localstore.NewMemory()
	opts = append([]Option{WithHTTPClient(srv.Client())}, opts...)
	return New(srv.URL+"/", store, opts...), store
}

func TestClient_Login(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantErr  string
		wantUser string
	}{
		{
			name: "success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/auth/login", r.URL.Path)
				assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "ada@example.com", r.PostForm.Get("username"))
				assert.Equal(t, "secret1", r.PostForm.Get("password"))
				_, _ = io.WriteString(w, `{"access_token":"tok","token_type":"bearer","user":{"id":"u1","email":"ada@example.com","full_name":"Ada"}}`)
			},
			wantUser: "Ada",
		},
		{
			name: "bad credentials surface server detail",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"detail":"Incorrect email or password"}`)
			},
			wantErr: "Incorrect email or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resets := 0
			c, store := newTestClient(t, tt.handler, WithUnauthorizedHandler(func(context.Context) { resets++ }))
			require.NoError(t, store.Set(context.Background(), localstore.KeyAccessToken, "old"))

			res, err := c.Login(context.Background(), "ada@example.com", "secret1")
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "tok", res.AccessToken)
				assert.Equal(t, tt.wantUser, res.User.FullName)
			}

			// login never triggers session expiry
			assert.Zero(t, resets)
			tok, _ := store.Get(context.Background(), localstore.KeyAccessToken)
			assert.Equal(t, "old", tok)
		})
	}
}

func TestClient_Register(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ada", body["full_name"])
		assert.Equal(t, "secret1", body["password"])
		assert.NotContains(t, body, "ConfirmPassword")
		_, _ = io.WriteString(w, `{"id":"u1","email":"ada@example.com","full_name":"Ada"}`)
	})

	u, err := c.Register(context.Background(), model.Registration{
		FullName: "Ada", Email: "ada@example.com", Password: "secret1", ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
}

func TestClient_BearerHeader(t *testing.T) {
	var got string
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, `{"_id":"u1","email":"a@b.c","full_name":"A"}`)
	})
	ctx := context.Background()

	_, err := c.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Set(ctx, localstore.KeyAccessToken, "tok"))
	u, err := c.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", got)
	assert.Equal(t, "u1", u.ID)
}

func TestClient_UnauthorizedExpiresSession(t *testing.T) {
	resets := 0
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"detail":"Could not validate credentials"}`)
	}, WithUnauthorizedHandler(func(context.Context) { resets++ }))
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, localstore.KeyAccessToken, "expired"))
	require.NoError(t, store.Set(ctx, localstore.KeyCurrentResumeID, "r1"))

	_, err := c.ListResumes(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, 1, resets)

	tok, _ := store.Get(ctx, localstore.KeyAccessToken)
	assert.Empty(t, tok)
	rid, _ := store.Get(ctx, localstore.KeyCurrentResumeID)
	assert.Equal(t, "r1", rid)
}

func TestClient_ErrorMessages(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		call   func(c *Client) error
		want   string
		is     error
	}{
		{
			name:   "server detail",
			status: http.StatusBadRequest,
			body:   `{"detail":"Version name already exists for this user"}`,
			call: func(c *Client) error {
				_, err := c.CreateResume(context.Background(), model.NewDraft(nil))
				return err
			},
			want: "Version name already exists for this user",
		},
		{
			name:   "no detail",
			status: http.StatusInternalServerError,
			body:   `oops`,
			call: func(c *Client) error {
				_, err := c.ListResumes(context.Background())
				return err
			},
			want: "HTTP error! status: 500",
		},
		{
			name:   "validation list detail falls back",
			status: http.StatusUnprocessableEntity,
			body:   `{"detail":[{"loc":["body"],"msg":"field required"}]}`,
			call: func(c *Client) error {
				_, err := c.UpdateResume(context.Background(), "r1", model.NewDraft(nil))
				return err
			},
			want: "HTTP error! status: 422",
		},
		{
			name:   "not found",
			status: http.StatusNotFound,
			body:   `{"detail":"Resume not found"}`,
			call: func(c *Client) error {
				return c.DeleteResume(context.Background(), "gone")
			},
			want: "Resume not found",
			is:   ErrNotFound,
		},
		{
			name:   "download failure",
			status: http.StatusInternalServerError,
			body:   ``,
			call: func(c *Client) error {
				_, err := c.DownloadResume(context.Background(), "r1")
				return err
			},
			want: "Download failed: 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			err := tt.call(c)
			require.Error(t, err)
			assert.EqualError(t, err, tt.want)

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			if tt.is != nil {
				assert.True(t, errors.Is(err, tt.is))
			}
		})
	}
}

func TestClient_ResumeCRUD(t *testing.T) {
	var created map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/resumes/":
			_, _ = io.WriteString(w, `[{"_id":"r1","version_name":"v1","personal_info":{"name":"Ada"}}]`)
		case r.Method == http.MethodGet && r.URL.Path == "/api/resumes/r1":
			_, _ = io.WriteString(w, `{"_id":"r1","version_name":"v1","personal_info":{"name":"Ada"},"skills":["go"]}`)
		case r.Method == http.MethodPost && r.URL.Path == "/api/resumes/":
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&created))
			_, _ = io.WriteString(w, `{"_id":"r2","version_name":"v2","personal_info":{"name":"Ada"}}`)
		case r.Method == http.MethodPut && r.URL.Path == "/api/resumes/r2":
			_, _ = io.WriteString(w, `{"_id":"r2","version_name":"v2","personal_info":{"name":"Ada L"}}`)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/resumes/r2":
			_, _ = io.WriteString(w, `{"message":"Resume deleted successfully"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	list, err := c.ListResumes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "r1", list[0].ID)
	assert.NotNil(t, list[0].Experience)

	one, err := c.GetResume(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, one.Skills)

	draft := model.NewDraft(&model.User{FullName: "Ada"})
	draft.ID = "ignored"
	draft.VersionName = "v2"
	out, err := c.CreateResume(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, "r2", out.ID)
	assert.NotContains(t, created, "id")
	assert.NotContains(t, created, "created_at")
	assert.Equal(t, []any{}, created["experience"])

	upd, err := c.UpdateResume(ctx, "r2", *out)
	require.NoError(t, err)
	assert.Equal(t, "r2", upd.ID)
	assert.Equal(t, "Ada L", upd.PersonalInfo.Name)

	require.NoError(t, c.DeleteResume(ctx, "r2"))

	_, err = c.UpdateResume(ctx, "", *out)
	assert.Error(t, err)
}

func TestClient_DownloadResume(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/resumes/r1/download", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	})

	d, err := c.DownloadResume(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", d.ContentType)
	assert.Equal(t, []byte("%PDF-1.4"), d.Body)
}

func TestClient_RecentActivities(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/resumes/activities/recent", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		_, _ = io.WriteString(w, `[{"id":"a1","activity_type":"created","details":"Created resume version: v1","created_at":"2024-05-01T12:00:00"}]`)
	})

	acts, err := c.RecentActivities(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.Equal(t, model.ActivityCreated, acts[0].Type)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url, localstore.NewMemory())
	_, err := c.ListResumes(context.Background())
	require.Error(t, err)
	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
}
