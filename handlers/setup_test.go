package handlers_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/cdaly/biblenotes/bible"
	"github.com/cdaly/biblenotes/db"
	"github.com/cdaly/biblenotes/handlers"
)

func newTestID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// setupServer builds an echo instance over a fresh in-memory database.
func setupServer(t *testing.T, bc *bible.Client) (*echo.Echo, *bun.DB) {
	t.Helper()

	bdb, err := db.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", newTestID()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = bdb.Close() })
	require.NoError(t, db.CreateTables(context.Background(), bdb))

	if bc == nil {
		bc = bible.New("http://upstream.invalid", "de4e12af7f28f599-02", "")
	}

	e := echo.New()
	handlers.Register(e, handlers.New(bdb, bc))
	return e, bdb
}

func doJSON(t *testing.T, e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// signupForm posts the multipart signup form, optionally with an avatar file.
func signupForm(t *testing.T, e *echo.Echo, username, email, password string, avatar []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if username != "" {
		require.NoError(t, w.WriteField("username", username))
	}
	if email != "" {
		require.NoError(t, w.WriteField("email", email))
	}
	if password != "" {
		require.NoError(t, w.WriteField("password", password))
	}
	if avatar != nil {
		fw, err := w.CreateFormFile("avatar", "avatar.jpg")
		require.NoError(t, err)
		_, err = fw.Write(avatar)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/users", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
