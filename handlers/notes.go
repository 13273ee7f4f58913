package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cdaly/biblenotes/models"
)

type createNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateNote saves a note for the user in the path. The user is checked
// first so a bad id is a 404, never a dangling row.
func (h *Handler) CreateNote(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || req.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Title and content are required")
	}

	exists, err := h.userExists(c, id)
	if err != nil {
		return err
	}
	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	note := &models.Note{
		Title:   req.Title,
		Content: req.Content,
		UserID:  id,
	}
	if _, err := h.db.NewInsert().Model(note).Exec(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Note saved successfully",
		"note":    note,
	})
}
