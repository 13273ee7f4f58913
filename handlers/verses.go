package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cdaly/biblenotes/models"
)

type createVerseRequest struct {
	Verse string `json:"verse"`
}

// CreateVerse bookmarks a scripture reference (e.g. "GEN.1.1") for the
// user in the path.
func (h *Handler) CreateVerse(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	var req createVerseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Verse = strings.TrimSpace(req.Verse)
	if req.Verse == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Verse is required")
	}

	exists, err := h.userExists(c, id)
	if err != nil {
		return err
	}
	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	verse := &models.Verse{
		Reference: req.Verse,
		UserID:    id,
	}
	if _, err := h.db.NewInsert().Model(verse).Exec(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Verse saved successfully",
		"verse":   verse,
	})
}
