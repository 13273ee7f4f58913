package handlers

import (
	"database/sql"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cdaly/biblenotes/models"
	"github.com/cdaly/biblenotes/password"
)

type userSummary struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// userDetail is the full single-user projection. It deliberately includes
// the stored password hash and the avatar as a base64 data URI – the
// contract the frontend was built against.
type userDetail struct {
	ID       int            `json:"id"`
	Username string         `json:"username"`
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Avatar   *string        `json:"avatar"`
	Notes    []*models.Note `json:"notes"`
}

type updateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func newUserDetail(u *models.User) userDetail {
	notes := u.Notes
	if notes == nil {
		notes = []*models.Note{}
	}
	return userDetail{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
		Avatar:   avatarDataURI(u.Avatar),
		Notes:    notes,
	}
}

// avatarDataURI encodes raw avatar bytes for display, or nil when the user
// never uploaded one.
func avatarDataURI(raw []byte) *string {
	if len(raw) == 0 {
		return nil
	}
	uri := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)
	return &uri
}

// isDuplicate matches unique-constraint violations across the supported
// dialects (postgres, sqlite, mysql).
func isDuplicate(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "unique constraint failed") ||
		strings.Contains(msg, "duplicate entry")
}

// Signup registers a new user from multipart form data, with an optional
// avatar image file.
func (h *Handler) Signup(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	email := strings.TrimSpace(c.FormValue("email"))
	plaintext := c.FormValue("password")

	if username == "" || email == "" || plaintext == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Username, email, and password are required")
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var avatar []byte
	if fh, ferr := c.FormFile("avatar"); ferr == nil {
		src, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		defer src.Close()
		if avatar, err = io.ReadAll(src); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hash,
		Avatar:   avatar,
	}
	if _, err := h.db.NewInsert().Model(user).Exec(c.Request().Context()); err != nil {
		if isDuplicate(err) {
			return echo.NewHTTPError(http.StatusConflict, "Username or email already taken")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, userSummary{ID: user.ID, Username: user.Username, Email: user.Email})
}

// ListUsers returns all users with id, username and email only.
func (h *Handler) ListUsers(c echo.Context) error {
	var users []models.User
	err := h.db.NewSelect().Model(&users).
		Column("u.id", "u.username", "u.email").
		OrderExpr("u.id ASC").
		Scan(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	result := make([]userSummary, len(users))
	for i, u := range users {
		result[i] = userSummary{ID: u.ID, Username: u.Username, Email: u.Email}
	}
	return c.JSON(http.StatusOK, result)
}

// GetUser returns the full projection of one user, including notes and the
// avatar data URI.
func (h *Handler) GetUser(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	user := new(models.User)
	err = h.db.NewSelect().Model(user).
		Relation("Notes").
		Where("u.id = ?", id).
		Scan(c.Request().Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]userDetail{"user": newUserDetail(user)})
}

// UpdateUser overwrites username, email and password from the request body.
// The password is re-hashed before storage, same as signup.
func (h *Handler) UpdateUser(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Username, email, and password are required")
	}

	user := new(models.User)
	err = h.db.NewSelect().Model(user).
		Relation("Notes").
		Where("u.id = ?", id).
		Scan(c.Request().Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	user.Username = req.Username
	user.Email = req.Email
	user.Password = hash
	_, err = h.db.NewUpdate().Model(user).
		Column("username", "email", "password").
		WherePK().
		Exec(c.Request().Context())
	if err != nil {
		if isDuplicate(err) {
			return echo.NewHTTPError(http.StatusConflict, "Username or email already taken")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]userDetail{"user": newUserDetail(user)})
}

// DeleteUser removes a user. Their notes and verses go with them via the
// ON DELETE CASCADE foreign keys.
func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	res, err := h.db.NewDelete().Model((*models.User)(nil)).
		Where("id = ?", id).
		Exec(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// userID parses the :id path parameter.
func userID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	return id, nil
}

// userExists reports whether a user row exists for id.
func (h *Handler) userExists(c echo.Context, id int) (bool, error) {
	exists, err := h.db.NewSelect().Model((*models.User)(nil)).
		Where("id = ?", id).
		Exists(c.Request().Context())
	if err != nil {
		return false, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return exists, nil
}
