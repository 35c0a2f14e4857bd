package app

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TonyTawil/popcorn-app/internal/sdk/middleware"
	"github.com/TonyTawil/popcorn-app/internal/sdk/models"
	"github.com/TonyTawil/popcorn-app/internal/sdk/userdb"
	"github.com/TonyTawil/popcorn-app/internal/services/sentry"
)

// Watch-list handlers. All of these run behind the Authenticate middleware
// and operate only on the account resolved from the session cookie.

func (a *App) HandleGetWatchList(c *gin.Context) {
	user, ok := a.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, entriesOrEmpty(user.WatchList))
}

func (a *App) HandleGetWatched(c *gin.Context) {
	user, ok := a.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, entriesOrEmpty(user.Watched))
}

func (a *App) HandleAddToWatchList(c *gin.Context) {
	a.addToList(c, listWatchList)
}

func (a *App) HandleAddToWatched(c *gin.Context) {
	a.addToList(c, listWatched)
}

func (a *App) HandleRemoveFromWatchList(c *gin.Context) {
	a.removeFromList(c, listWatchList)
}

func (a *App) HandleRemoveFromWatched(c *gin.Context) {
	a.removeFromList(c, listWatched)
}

// HandleMoveToWatched promotes a movie from the watch list to the watched
// list in a single save.
func (a *App) HandleMoveToWatched(c *gin.Context) {
	var req MoveMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MovieID <= 0 {
		writeError(c, ErrInvalidMovieData)
		return
	}

	user, ok := a.currentUser(c)
	if !ok {
		return
	}

	remaining, moved := removeEntry(user.WatchList, req.MovieID)
	if moved == nil {
		writeError(c, ErrMovieNotInList)
		return
	}

	user.WatchList = remaining
	if !containsEntry(user.Watched, req.MovieID) {
		user.Watched = append(user.Watched, *moved)
	}

	if err := a.db.SaveUser(c.Request.Context(), user); err != nil {
		a.toSentry(c, "move_to_watched", "db_save", sentry.LevelError, err)
		writeError(c, ErrUpdateLists)
		return
	}

	c.JSON(http.StatusOK, entriesOrEmpty(user.Watched))
}

type listKind int

const (
	listWatchList listKind = iota
	listWatched
)

func (a *App) addToList(c *gin.Context, kind listKind) {
	var req MovieEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, ErrInvalidMovieData)
		return
	}
	if req.MovieID <= 0 || req.Title == "" || req.CoverImage == "" {
		writeError(c, ErrInvalidMovieData)
		return
	}

	user, ok := a.currentUser(c)
	if !ok {
		return
	}

	list := user.WatchList
	if kind == listWatched {
		list = user.Watched
	}

	if containsEntry(list, req.MovieID) {
		writeError(c, ErrMovieAlreadyListed)
		return
	}

	entry := models.MovieEntry{
		MovieID:    req.MovieID,
		Title:      req.Title,
		CoverImage: req.CoverImage,
	}

	if kind == listWatched {
		user.Watched = append(user.Watched, entry)
	} else {
		user.WatchList = append(user.WatchList, entry)
	}

	if err := a.db.SaveUser(c.Request.Context(), user); err != nil {
		a.toSentry(c, "add_to_list", "db_save", sentry.LevelError, err)
		writeError(c, ErrUpdateLists)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (a *App) removeFromList(c *gin.Context, kind listKind) {
	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil || movieID <= 0 {
		writeError(c, ErrInvalidMovieData)
		return
	}

	user, ok := a.currentUser(c)
	if !ok {
		return
	}

	var removed *models.MovieEntry
	if kind == listWatched {
		user.Watched, removed = removeEntry(user.Watched, movieID)
	} else {
		user.WatchList, removed = removeEntry(user.WatchList, movieID)
	}

	if removed == nil {
		writeError(c, ErrMovieNotInList)
		return
	}

	if err := a.db.SaveUser(c.Request.Context(), user); err != nil {
		a.toSentry(c, "remove_from_list", "db_save", sentry.LevelError, err)
		writeError(c, ErrUpdateLists)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Movie removed successfully"})
}

// currentUser loads the account for the authenticated session. On failure
// the response has already been written.
func (a *App) currentUser(c *gin.Context) (models.User, bool) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		writeError(c, ErrUnauthorized)
		return models.User{}, false
	}

	user, err := a.db.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, userdb.ErrDBNotFound) {
			writeError(c, ErrUserNotFound)
			return models.User{}, false
		}
		a.toSentry(c, "lists", "db", sentry.LevelError, err)
		writeError(c, ErrUpdateLists)
		return models.User{}, false
	}

	return user, true
}

func entriesOrEmpty(entries []models.MovieEntry) []models.MovieEntry {
	if entries == nil {
		return []models.MovieEntry{}
	}
	return entries
}

func containsEntry(entries []models.MovieEntry, movieID int64) bool {
	for _, e := range entries {
		if e.MovieID == movieID {
			return true
		}
	}
	return false
}

// removeEntry returns the list without movieID and the removed entry, or
// nil when the movie was not present. Order of the remaining entries is
// preserved.
func removeEntry(entries []models.MovieEntry, movieID int64) ([]models.MovieEntry, *models.MovieEntry) {
	for i, e := range entries {
		if e.MovieID == movieID {
			removed := e
			out := make([]models.MovieEntry, 0, len(entries)-1)
			out = append(out, entries[:i]...)
			out = append(out, entries[i+1:]...)
			return out, &removed
		}
	}
	return entries, nil
}
