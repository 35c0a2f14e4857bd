package app

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TonyTawil/popcorn-app/internal/sdk/userdb"
	"github.com/TonyTawil/popcorn-app/internal/services/sentry"
)

// HandleVerifyEmail consumes a verification token: the account it resolves
// to becomes verified and the token is cleared in the same save, so a second
// call with the same token fails the lookup. Tokens never expire; the only
// failure mode is "not found or already consumed".
func (a *App) HandleVerifyEmail(c *gin.Context) {
	verificationToken := c.Query("token")
	if verificationToken == "" {
		writeError(c, ErrInvalidVerifyToken)
		return
	}

	user, err := a.db.GetUserByVerificationToken(c.Request.Context(), verificationToken)
	if err != nil {
		if errors.Is(err, userdb.ErrDBNotFound) {
			writeError(c, ErrInvalidVerifyToken)
			return
		}
		a.toSentry(c, "verify_email", "db", sentry.LevelError, err)
		writeError(c, ErrVerifyEmail)
		return
	}

	user.IsEmailVerified = true
	user.EmailVerificationToken = ""

	if err := a.db.SaveUser(c.Request.Context(), user); err != nil {
		a.toSentry(c, "verify_email", "db_save", sentry.LevelError, err)
		writeError(c, ErrVerifyEmail)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Email verified successfully"})
}

// HandleIsEmailVerified reports the verification state for an account id.
// Read-only, no side effects.
func (a *App) HandleIsEmailVerified(c *gin.Context) {
	userID := c.Param("userId")

	user, err := a.db.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, userdb.ErrDBNotFound) {
			writeError(c, ErrUserNotFound)
			return
		}
		a.toSentry(c, "is_verified", "db", sentry.LevelError, err)
		writeError(c, ErrCheckVerify)
		return
	}

	c.JSON(http.StatusOK, VerifiedResponse{IsEmailVerified: user.IsEmailVerified})
}
