package palettestore

import (
	"encoding/json"
	"errors"
	"net/http"
)

// NewHandler returns an http.Handler that exposes the Store over HTTP.
// It uses Go 1.22+ ServeMux pattern matching for method+path routing.
func NewHandler(store Store) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /v1/ping", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(); err != nil {
			WriteError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("GET /v1/palettes", func(w http.ResponseWriter, r *http.Request) {
		palettes, err := store.List()
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		WriteJSON(w, http.StatusOK, palettes)
	})

	mux.HandleFunc("POST /v1/palettes", func(w http.ResponseWriter, r *http.Request) {
		var p SavedPalette
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			WriteError(w, http.StatusBadRequest, ErrInvalidPalette.Error()+": invalid request body: "+err.Error())
			return
		}
		if err := store.Create(p); err != nil {
			WriteError(w, statusFor(err), err.Error())
			return
		}
		created, err := store.Get(p.Name)
		if err != nil {
			WriteError(w, statusFor(err), err.Error())
			return
		}
		WriteJSON(w, http.StatusCreated, created)
	})

	mux.HandleFunc("GET /v1/palettes/{name}", func(w http.ResponseWriter, r *http.Request) {
		p, err := store.Get(r.PathValue("name"))
		if err != nil {
			WriteError(w, statusFor(err), err.Error())
			return
		}
		WriteJSON(w, http.StatusOK, p)
	})

	mux.HandleFunc("DELETE /v1/palettes/{name}", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Delete(r.PathValue("name")); err != nil {
			WriteError(w, statusFor(err), err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	return mux
}

// statusFor maps store sentinel errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrExists):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidName), errors.Is(err, ErrInvalidPalette):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON encodes v as JSON and writes it to w with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError writes a JSON error response with the given status code and message.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"error": msg})
}
