package app

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestWatchListRequiresAuth(t *testing.T) {
	_, _, _, router := newTestApp(t)

	w := doJSON(t, router, http.MethodGet, "/api/users/watchlist", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a session cookie, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/users/watchlist", nil, &http.Cookie{Name: "jwt", Value: "not-a-jwt"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with a bogus session cookie, got %d", w.Code)
	}
}

func TestWatchListCRUD(t *testing.T) {
	_, _, _, router := newTestApp(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/signup", validSignup())
	if w.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d", w.Code)
	}
	cookie := sessionCookie(t, w)

	entry := MovieEntryRequest{MovieID: 603, Title: "The Matrix", CoverImage: "https://image.tmdb.org/t/p/w500/matrix.jpg"}

	t.Run("starts empty", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/users/watchlist", nil, cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var list []MovieEntryRequest
		if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
			t.Fatalf("expected a JSON array, got %q", w.Body.String())
		}
		if len(list) != 0 {
			t.Fatalf("expected empty watch list, got %v", list)
		}
	})

	t.Run("add", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/users/watchlist", entry, cookie)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body %s)", w.Code, w.Body.String())
		}

		w = doJSON(t, router, http.MethodGet, "/api/users/watchlist", nil, cookie)
		var list []MovieEntryRequest
		if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
			t.Fatalf("decoding list: %v", err)
		}
		if len(list) != 1 || list[0].MovieID != 603 || list[0].Title != "The Matrix" {
			t.Fatalf("unexpected watch list: %v", list)
		}
	})

	t.Run("duplicate add rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/users/watchlist", entry, cookie)
		expectError(t, w, http.StatusBadRequest, ErrMovieAlreadyListed)
	})

	t.Run("invalid entry rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/users/watchlist", MovieEntryRequest{MovieID: 0, Title: "x", CoverImage: "y"}, cookie)
		expectError(t, w, http.StatusBadRequest, ErrInvalidMovieData)
	})

	t.Run("move to watched", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/users/watched/move", MoveMovieRequest{MovieID: 603}, cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
		}

		var watched []MovieEntryRequest
		if err := json.Unmarshal(w.Body.Bytes(), &watched); err != nil {
			t.Fatalf("decoding watched list: %v", err)
		}
		if len(watched) != 1 || watched[0].MovieID != 603 {
			t.Fatalf("expected movie in watched list, got %v", watched)
		}

		// Gone from the watch list.
		w = doJSON(t, router, http.MethodGet, "/api/users/watchlist", nil, cookie)
		var list []MovieEntryRequest
		if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
			t.Fatalf("decoding list: %v", err)
		}
		if len(list) != 0 {
			t.Fatalf("expected movie moved out of watch list, got %v", list)
		}
	})

	t.Run("move absent movie", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/users/watched/move", MoveMovieRequest{MovieID: 604}, cookie)
		expectError(t, w, http.StatusNotFound, ErrMovieNotInList)
	})

	t.Run("remove from watched", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/api/users/watched/603", nil, cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
		}

		w = doJSON(t, router, http.MethodDelete, "/api/users/watched/603", nil, cookie)
		expectError(t, w, http.StatusNotFound, ErrMovieNotInList)
	})

	t.Run("remove with bad id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/api/users/watchlist/abc", nil, cookie)
		expectError(t, w, http.StatusBadRequest, ErrInvalidMovieData)
	})
}
