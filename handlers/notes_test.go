package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cdaly/biblenotes/models"
)

func TestCreateNote(t *testing.T) {
	e, bdb := setupServer(t, nil)
	signupForm(t, e, "ann", "ann@x.com", "secret", nil)

	rec := doJSON(t, e, http.MethodPost, "/api/users/1/notes", map[string]string{
		"title": "Genesis thoughts", "content": "In the beginning...",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "Note saved successfully", body["message"])
	note, ok := body["note"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "Genesis thoughts", note["title"])
	require.Equal(t, "In the beginning...", note["content"])
	require.EqualValues(t, 1, note["userId"])

	count, err := bdb.NewSelect().Model((*models.Note)(nil)).Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestCreateNoteUserNotFound(t *testing.T) {
	e, bdb := setupServer(t, nil)

	rec := doJSON(t, e, http.MethodPost, "/api/users/42/notes", map[string]string{
		"title": "orphan", "content": "should not exist",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())

	count, err := bdb.NewSelect().Model((*models.Note)(nil)).Count(context.Background())
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestCreateNoteMissingFields(t *testing.T) {
	e, _ := setupServer(t, nil)
	signupForm(t, e, "ann", "ann@x.com", "secret", nil)

	rec := doJSON(t, e, http.MethodPost, "/api/users/1/notes", map[string]string{"title": "no content"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotesAppearOnUserFetch(t *testing.T) {
	e, _ := setupServer(t, nil)
	signupForm(t, e, "ann", "ann@x.com", "secret", nil)

	doJSON(t, e, http.MethodPost, "/api/users/1/notes", map[string]string{
		"title": "first", "content": "one",
	})
	doJSON(t, e, http.MethodPost, "/api/users/1/notes", map[string]string{
		"title": "second", "content": "two",
	})

	rec := doJSON(t, e, http.MethodGet, "/api/users/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	user := body["user"].(map[string]interface{})
	notes, ok := user["notes"].([]interface{})
	require.True(t, ok)
	require.Len(t, notes, 2)
}

func TestCreateVerse(t *testing.T) {
	e, bdb := setupServer(t, nil)
	signupForm(t, e, "ann", "ann@x.com", "secret", nil)

	rec := doJSON(t, e, http.MethodPost, "/api/users/1/verses", map[string]string{"verse": "GEN.1.1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "Verse saved successfully", body["message"])
	verse, ok := body["verse"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "GEN.1.1", verse["reference"])
	require.EqualValues(t, 1, verse["userId"])

	stored := new(models.Verse)
	require.NoError(t, bdb.NewSelect().Model(stored).Where("v.id = ?", 1).Scan(context.Background()))
	require.Equal(t, "GEN.1.1", stored.Reference)
	require.Equal(t, 1, stored.UserID)
}

func TestCreateVerseUserNotFound(t *testing.T) {
	e, bdb := setupServer(t, nil)

	rec := doJSON(t, e, http.MethodPost, "/api/users/42/verses", map[string]string{"verse": "GEN.1.1"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	count, err := bdb.NewSelect().Model((*models.Verse)(nil)).Count(context.Background())
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestCreateVerseMissingReference(t *testing.T) {
	e, _ := setupServer(t, nil)
	signupForm(t, e, "ann", "ann@x.com", "secret", nil)

	rec := doJSON(t, e, http.MethodPost, "/api/users/1/verses", map[string]string{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
