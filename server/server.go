// Package server exposes palette generation, rendering, color inspection,
// and the saved-palette library over HTTP.
package server

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/kastheco/swatch/colormath"
	"github.com/kastheco/swatch/config"
	"github.com/kastheco/swatch/config/palettestore"
	"github.com/kastheco/swatch/log"
	"github.com/kastheco/swatch/palette"
	"github.com/kastheco/swatch/render"
	"go.uber.org/zap"
)

// New returns the API handler. store may be nil, in which case the library
// routes are not mounted.
func New(gen *palette.Generator, store palettestore.Store, cfg config.Config) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/ping", func(w http.ResponseWriter, r *http.Request) {
		if store != nil {
			if err := store.Ping(); err != nil {
				palettestore.WriteError(w, http.StatusServiceUnavailable, err.Error())
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("GET /v1/formulas", func(w http.ResponseWriter, r *http.Request) {
		palettestore.WriteJSON(w, http.StatusOK, palette.Formulas())
	})

	mux.HandleFunc("GET /v1/colors/{color}", func(w http.ResponseWriter, r *http.Request) {
		c, err := colormath.ParseColor(r.PathValue("color"))
		if err != nil {
			palettestore.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		palettestore.WriteJSON(w, http.StatusOK, colormath.Inspect(c))
	})

	mux.HandleFunc("GET /v1/palette", paletteHandler(gen, cfg))

	if store != nil {
		lib := palettestore.NewHandler(store)
		mux.Handle("/v1/palettes", lib)
		mux.Handle("/v1/palettes/", lib)
	}

	return logRequests(mux)
}

// paletteHandler serves GET /v1/palette?formula=&base=&lock=SLOT:COLOR&format=&width=&height=.
func paletteHandler(gen *palette.Generator, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		name := q.Get("formula")
		if name == "" {
			name = cfg.Formula
		}
		formula, known := palette.ParseFormula(name)
		if !known {
			log.Debug("unrecognized formula, using grayscale", zap.String("formula", name))
		}

		var base *colormath.RGB
		if s := q.Get("base"); s != "" {
			c, err := colormath.ParseColor(s)
			if err != nil {
				palettestore.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}
			base = &c
		}

		locked, err := palette.ParseLocks(q["lock"])
		if err != nil {
			palettestore.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		format, err := render.ParseFormat(q.Get("format"))
		if err != nil {
			palettestore.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		width, err := intParam(q.Get("width"), cfg.Render.Width)
		if err != nil {
			palettestore.WriteError(w, http.StatusBadRequest, "width: "+err.Error())
			return
		}
		height, err := intParam(q.Get("height"), cfg.Render.Height)
		if err != nil {
			palettestore.WriteError(w, http.StatusBadRequest, "height: "+err.Error())
			return
		}

		doc := render.Document{
			Formula: string(formula),
			Colors:  gen.Generate(formula, base, locked),
		}

		// Render into a buffer so an encoding failure can still become a 500.
		var buf bytes.Buffer
		if err := render.Write(&buf, format, doc, width, height); err != nil {
			palettestore.WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", format.ContentType())
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	}
}

const maxDimension = 8192

func intParam(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v <= 0 || v > maxDimension {
		return 0, strconv.ErrRange
	}
	return v, nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}
