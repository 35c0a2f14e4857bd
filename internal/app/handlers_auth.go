package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/TonyTawil/popcorn-app/internal/sdk/middleware"
	"github.com/TonyTawil/popcorn-app/internal/sdk/models"
	"github.com/TonyTawil/popcorn-app/internal/sdk/userdb"
	"github.com/TonyTawil/popcorn-app/internal/services/jwt"
	"github.com/TonyTawil/popcorn-app/internal/services/sentry"
	"github.com/TonyTawil/popcorn-app/internal/services/token"
)

// HandleSignup registers a new account, issues a session cookie immediately
// (verification is advisory, not a gate), and dispatches the verification
// email after the response is written.
func (a *App) HandleSignup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ErrInvalidBody)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	// Validation order is fixed; the first failure wins and is the only
	// error reported.
	if !isValidEmail(req.Email) {
		writeError(c, ErrInvalidEmail)
		return
	}
	if !isValidPassword(req.Password) {
		writeError(c, ErrWeakPassword)
		return
	}
	if !passwordsMatch(req.Password, req.ConfirmPassword) {
		writeError(c, ErrPasswordMismatch)
		return
	}

	// Uniqueness checks are sequential and short-circuit: a request with
	// both a taken username and a taken email reports only the username.
	if _, err := a.db.GetUserByUsername(c.Request.Context(), req.Username); err == nil {
		writeError(c, ErrUsernameTaken)
		return
	} else if !errors.Is(err, userdb.ErrDBNotFound) {
		a.toSentry(c, "signup", "db_username", sentry.LevelError, err)
		writeError(c, ErrSignup)
		return
	}

	if _, err := a.db.GetUserByEmail(c.Request.Context(), req.Email); err == nil {
		writeError(c, ErrEmailTaken)
		return
	} else if !errors.Is(err, userdb.ErrDBNotFound) {
		a.toSentry(c, "signup", "db_email", sentry.LevelError, err)
		writeError(c, ErrSignup)
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Username == "" ||
		(req.Gender != models.GenderMale && req.Gender != models.GenderFemale) {
		writeError(c, ErrInvalidUserData)
		return
	}

	hashedPassword, err := a.hasher.HashPassword(req.Password)
	if err != nil {
		a.toSentry(c, "signup", "bcrypt", sentry.LevelError, err)
		writeError(c, ErrSignup)
		return
	}

	verificationToken, err := token.Generate()
	if err != nil {
		a.toSentry(c, "signup", "token", sentry.LevelError, err)
		writeError(c, ErrSignup)
		return
	}

	user, err := a.db.CreateUser(c.Request.Context(), models.NewUser{
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		Username:               req.Username,
		Email:                  req.Email,
		Password:               hashedPassword,
		Gender:                 req.Gender,
		ProfilePic:             profilePicFor(req.Gender, req.Username),
		EmailVerificationToken: verificationToken,
	})
	if err != nil {
		if errors.Is(err, userdb.ErrDBDuplicatedEntry) {
			// A concurrent signup won the race between the pre-checks
			// and the insert. Re-check the username to report the same
			// field-specific conflict the pre-check path would have.
			if _, lookupErr := a.db.GetUserByUsername(c.Request.Context(), req.Username); lookupErr == nil {
				writeError(c, ErrUsernameTaken)
			} else {
				writeError(c, ErrEmailTaken)
			}
			return
		}
		a.toSentry(c, "signup", "db_create", sentry.LevelError, err)
		writeError(c, ErrSignup)
		return
	}

	sessionToken, err := a.tokens.GenerateSessionToken(c.Request.Context(), user.ID.Hex())
	if err != nil {
		a.toSentry(c, "signup", "jwt", sentry.LevelError, err)
		writeError(c, ErrSignup)
		return
	}
	a.setSessionCookie(c, sessionToken)

	c.JSON(http.StatusCreated, publicUser(user))

	// Fire-and-forget: the response above is already committed, so a slow
	// or failing mail provider can't affect this request.
	go a.dispatchVerificationEmail(user.Email, verificationToken)
}

// HandleLogin authenticates a username/password pair. Unknown usernames and
// wrong passwords produce the same error to avoid account enumeration.
func (a *App) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ErrInvalidBody)
		return
	}

	req.Username = strings.TrimSpace(req.Username)

	user, err := a.db.GetUserByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, userdb.ErrDBNotFound) {
			writeError(c, ErrInvalidCredentials)
			return
		}
		a.toSentry(c, "login", "db", sentry.LevelError, err)
		writeError(c, ErrLogin)
		return
	}

	if !a.hasher.CheckPasswordHash(req.Password, user.Password) {
		writeError(c, ErrInvalidCredentials)
		return
	}

	sessionToken, err := a.tokens.GenerateSessionToken(c.Request.Context(), user.ID.Hex())
	if err != nil {
		a.toSentry(c, "login", "jwt", sentry.LevelError, err)
		writeError(c, ErrLogin)
		return
	}
	a.setSessionCookie(c, sessionToken)

	c.JSON(http.StatusOK, publicUser(user))
}

// HandleLogout clears the session cookie. It is idempotent and reports
// success whether or not a valid session existed; the token itself stays
// valid until its natural expiry.
func (a *App) HandleLogout(c *gin.Context) {
	a.clearSessionCookie(c)
	c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}

func publicUser(user models.User) UserResponse {
	return UserResponse{
		ID:         user.ID.Hex(),
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Username:   user.Username,
		ProfilePic: user.ProfilePic,
	}
}

func profilePicFor(gender, username string) string {
	style := "girl"
	if gender == models.GenderMale {
		style = "boy"
	}
	return fmt.Sprintf("https://avatar.iran.liara.run/public/%s?username=%s", style, url.QueryEscape(username))
}

func (a *App) setSessionCookie(c *gin.Context, sessionToken string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, sessionToken, int(jwt.SessionTTL.Seconds()), "/", "", a.cookieSecure, true)
}

func (a *App) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", a.cookieSecure, true)
}

// dispatchVerificationEmail runs detached from the request. Failures are
// captured and logged but never retried or surfaced.
func (a *App) dispatchVerificationEmail(email, verificationToken string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("verification email dispatch panicked", "recover", r)
		}
	}()

	verificationURL := fmt.Sprintf("%s/api/auth/verify-email?token=%s", a.baseURL, verificationToken)
	if err := a.email.SendVerificationEmail(email, verificationURL); err != nil {
		a.sentry.CaptureException(err)
		slog.Error("sending verification email", "error", err)
	}
}

func (a *App) toSentry(c *gin.Context, handler, errType string, level sentry.Level, err error) {
	a.sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("handler", handler)
		scope.SetExtra("error_type", errType)
		scope.SetLevel(level)
		if reqID := c.GetHeader("X-Request-ID"); reqID != "" {
			scope.SetTag("request_id", reqID)
		}
		a.sentry.CaptureException(err)
	})
}
