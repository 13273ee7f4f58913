package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Bible proxy endpoints. Each forwards its query parameters to the upstream
// API and wraps the untouched upstream JSON in {"response": ...}. Upstream
// failures surface as plain 500s, no retries.

// GetBibles returns one chapter, defaulting to Genesis 1.
func (h *Handler) GetBibles(c echo.Context) error {
	book := queryDefault(c, "book", "GEN")
	chapter := queryDefault(c, "chapter", "1")

	raw, err := h.bible.GetChapter(c.Request().Context(), book, chapter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respond(c, raw)
}

// GetBooks returns the edition's book listing.
func (h *Handler) GetBooks(c echo.Context) error {
	raw, err := h.bible.GetBooks(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respond(c, raw)
}

// GetScripture returns a single verse by reference, defaulting to GEN.1.1.
func (h *Handler) GetScripture(c echo.Context) error {
	verseID := queryDefault(c, "verse_id", "GEN.1.1")

	raw, err := h.bible.GetVerse(c.Request().Context(), verseID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respond(c, raw)
}

// GetChapterVerses returns all verses of a chapter, defaulting to GEN.1.
func (h *Handler) GetChapterVerses(c echo.Context) error {
	chapterID := queryDefault(c, "chapter_id", "GEN.1")

	raw, err := h.bible.GetChapterVerses(c.Request().Context(), chapterID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respond(c, raw)
}

func respond(c echo.Context, raw json.RawMessage) error {
	return c.JSON(http.StatusOK, map[string]json.RawMessage{"response": raw})
}

func queryDefault(c echo.Context, name, fallback string) string {
	if v := c.QueryParam(name); v != "" {
		return v
	}
	return fallback
}
