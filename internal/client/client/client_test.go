package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/filehost/internal/filex"
)

type fakeServer struct {
	*httptest.Server
	authHeaders []string
	putBody     []byte
	putCT       string
	confirmed   map[string]any
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()

	fs := &fakeServer{}
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux.HandleFunc("POST /signup", func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["username"] == "taken" {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "Username already exists"})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"message": "User created successfully",
			"user":    map[string]any{"id": 1, "username": in["username"]},
			"token":   "tok-1",
		})
	})
	mux.HandleFunc("POST /signIn", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
	})
	mux.HandleFunc("GET /files", func(w http.ResponseWriter, r *http.Request) {
		fs.authHeaders = append(fs.authHeaders, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{"files": []map[string]any{
			{"id": 1, "name": "a.txt", "size": 3, "key": "1/x.txt", "uploadedAt": "2024-05-01T12:00:00Z", "userId": 1},
		}})
	})
	mux.HandleFunc("DELETE /files/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "2" {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "You don't have permission to delete this file"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "File deleted successfully"})
	})
	mux.HandleFunc("GET /upload", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"uploadUrl": fs.URL + "/bucket/" + r.URL.Query().Get("filename") + "?sig=1",
			"key":       "1/abc.txt",
			"expiresIn": 3600,
			"message":   "Upload URL generated successfully",
		})
	})
	mux.HandleFunc("PUT /bucket/{name}", func(w http.ResponseWriter, r *http.Request) {
		fs.putBody, _ = io.ReadAll(r.Body)
		fs.putCT = r.Header.Get("Content-Type")
	})
	mux.HandleFunc("POST /files/confirm", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&fs.confirmed)
		writeJSON(w, http.StatusCreated, map[string]any{
			"message": "File metadata saved successfully",
			"file":    map[string]any{"id": 5, "name": fs.confirmed["filename"], "size": fs.confirmed["size"], "key": fs.confirmed["key"], "userId": 1},
		})
	})
	mux.HandleFunc("GET /metrics", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"cpu":  map[string]any{"currentLoad": 12.5, "cpus": []float64{10, 15}},
			"mem":  map[string]any{"total": 100, "used": 40, "free": 60},
			"temp": map[string]any{"main": nil, "max": nil, "sensors": []any{}},
		})
	})

	fs.Server = httptest.NewServer(mux)
	t.Cleanup(fs.Close)
	return fs
}

func TestClient_Signup(t *testing.T) {
	srv := newFakeServer(t)
	c := New(srv.URL+"/", time.Second)

	res, err := c.Signup(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", res.Token)
	assert.Equal(t, "alice", res.User.Username)

	_, err = c.Signup(context.Background(), "taken", "pw")
	require.ErrorIs(t, err, ErrConflict)
	assert.EqualError(t, err, "Username already exists")
}

func TestClient_SigninUnauthorized(t *testing.T) {
	srv := newFakeServer(t)
	c := New(srv.URL, time.Second)

	_, err := c.Signin(context.Background(), "alice", "bad")
	require.ErrorIs(t, err, ErrUnauthorized)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestClient_ListSendsBearer(t *testing.T) {
	srv := newFakeServer(t)
	c := New(srv.URL, time.Second)
	c.SetToken("tok-1")

	files, err := c.ListFiles(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.txt", files[0].Name)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), files[0].UploadedAt.UTC())
	assert.Equal(t, []string{"Bearer tok-1"}, srv.authHeaders)
}

func TestClient_DeleteFile(t *testing.T) {
	srv := newFakeServer(t)
	c := New(srv.URL, time.Second)

	require.NoError(t, c.DeleteFile(context.Background(), 1))
	require.ErrorIs(t, c.DeleteFile(context.Background(), 2), ErrForbidden)
}

func TestClient_Upload(t *testing.T) {
	srv := newFakeServer(t)
	c := New(srv.URL, time.Second)

	f, err := c.Upload(context.Background(), &filex.Upload{
		Name:        "abc.txt",
		Size:        5,
		ContentType: "text/plain",
		Data:        []byte("hello"),
	})
	require.NoError(t, err)

	assert.Equal(t, []byte("hello"), srv.putBody)
	assert.Equal(t, "text/plain", srv.putCT)
	assert.Equal(t, "abc.txt", srv.confirmed["filename"])
	assert.EqualValues(t, 5, srv.confirmed["size"])
	assert.Equal(t, "1/abc.txt", srv.confirmed["key"])
	assert.EqualValues(t, 5, f.ID)
}

func TestClient_Metrics(t *testing.T) {
	srv := newFakeServer(t)
	c := New(srv.URL, time.Second)

	m, err := c.Metrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12.5, m.CPU.CurrentLoad)
	assert.EqualValues(t, 40, m.Mem.Used)
	assert.Nil(t, m.Temp.Main)
}

func TestClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.ListFiles(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestAPIError_EmptyMessage(t *testing.T) {
	err := &APIError{StatusCode: http.StatusBadGateway}
	assert.Equal(t, "Bad Gateway", err.Error())
	assert.NoError(t, err.Unwrap())
}
