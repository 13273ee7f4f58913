package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Register wires every route onto e and installs the JSON error envelope.
func Register(e *echo.Echo, h *Handler) {
	e.HTTPErrorHandler = errorHandler

	e.GET("/test", h.Test)
	e.GET("/", h.Root)

	api := e.Group("/api")
	api.POST("/users", h.Signup)
	api.POST("/auth/login", h.Login)
	api.GET("/users", h.ListUsers)
	api.GET("/users/:id", h.GetUser)
	api.PUT("/users/:id", h.UpdateUser)
	api.DELETE("/users/:id", h.DeleteUser)
	api.POST("/users/:id/notes", h.CreateNote)
	api.POST("/users/:id/verses", h.CreateVerse)

	api.GET("/bibles", h.GetBibles)
	api.GET("/books", h.GetBooks)
	api.GET("/scripture", h.GetScripture)
	api.GET("/chapter", h.GetChapterVerses)
}

// errorHandler renders every failed request as {"error": "<message>"}.
// Handlers signal status via echo.NewHTTPError; anything else is a 500
// with the raw error text, which clients must treat as opaque.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprintf("%v", he.Message)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, map[string]string{"error": msg})
}
