package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error messages returned to clients. Validation, conflict, and credential
// failures all map to 400; unknown-user lookups map to 404; everything else
// is a generic 500 with the detail kept server-side.
const (
	ErrInvalidBody        = "Invalid request body"
	ErrInvalidEmail       = "Invalid email format"
	ErrWeakPassword       = "Password must be at least 8 characters long and contain both letters and numbers"
	ErrPasswordMismatch   = "Passwords do not match"
	ErrUsernameTaken      = "Username is already taken"
	ErrEmailTaken         = "Email is already in use"
	ErrInvalidUserData    = "Invalid user data"
	ErrInvalidCredentials = "Invalid username or password"
	ErrInvalidVerifyToken = "Invalid or expired verification token"
	ErrUserNotFound       = "User not found"
	ErrInvalidMovieData   = "Invalid movie data"
	ErrMovieAlreadyListed = "Movie is already in the list"
	ErrMovieNotInList     = "Movie not found in list"

	ErrSignup       = "An error occurred during signup"
	ErrLogin        = "An error occurred during login"
	ErrVerifyEmail  = "An error occurred during email verification"
	ErrCheckVerify  = "An error occurred while checking email verification status"
	ErrUpdateLists  = "An error occurred while updating the movie list"
	ErrUnauthorized = "Unauthorized"
)

var errorStatusMap = map[string]int{
	ErrInvalidBody:        http.StatusBadRequest,
	ErrInvalidEmail:       http.StatusBadRequest,
	ErrWeakPassword:       http.StatusBadRequest,
	ErrPasswordMismatch:   http.StatusBadRequest,
	ErrUsernameTaken:      http.StatusBadRequest,
	ErrEmailTaken:         http.StatusBadRequest,
	ErrInvalidUserData:    http.StatusBadRequest,
	ErrInvalidCredentials: http.StatusBadRequest,
	ErrInvalidVerifyToken: http.StatusBadRequest,
	ErrUserNotFound:       http.StatusNotFound,
	ErrInvalidMovieData:   http.StatusBadRequest,
	ErrMovieAlreadyListed: http.StatusBadRequest,
	ErrMovieNotInList:     http.StatusNotFound,

	ErrSignup:       http.StatusInternalServerError,
	ErrLogin:        http.StatusInternalServerError,
	ErrVerifyEmail:  http.StatusInternalServerError,
	ErrCheckVerify:  http.StatusInternalServerError,
	ErrUpdateLists:  http.StatusInternalServerError,
	ErrUnauthorized: http.StatusUnauthorized,
}

func statusForError(msg string) int {
	if status, ok := errorStatusMap[msg]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, msg string) {
	c.JSON(statusForError(msg), ErrorResponse{Error: msg})
}
