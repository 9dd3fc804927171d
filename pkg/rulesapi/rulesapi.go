package rulesapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/requestid"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// PatternView is the wire form of a validator.Pattern.
type PatternView struct {
	Name           string `json:"name" yaml:"name"`
	Pattern        string `json:"pattern" yaml:"pattern"`
	Message        string `json:"message" yaml:"message"`
	TranslationKey string `json:"translation_key" yaml:"translation_key"`
}

func NewPatternView(p validator.Pattern) PatternView {
	return PatternView{
		Name:           p.Name,
		Pattern:        p.Source(),
		Message:        p.Message,
		TranslationKey: p.TranslationKey,
	}
}

// Views returns every table entry in declaration order.
func Views() []PatternView {
	all := validator.All()
	views := make([]PatternView, 0, len(all))
	for _, p := range all {
		views = append(views, NewPatternView(p))
	}
	return views
}

type errorResponse struct {
	Error string `json:"error"`
}

// Router serves the pattern table read-only:
//
//	GET /patterns         all patterns
//	GET /patterns/{name}  one pattern, 404 if unknown
//	GET /healthz          liveness
func Router(log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log = log.With(logger.Component("rulesapi"))

	// The table never changes, so the list body is encoded once.
	list, err := json.Marshal(Views())
	if err != nil {
		panic("rulesapi: encode patterns: " + err.Error())
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(accessLog(log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	})

	r.Route("/patterns", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(list)
		})
		r.Get("/{name}", func(w http.ResponseWriter, r *http.Request) {
			name := chi.URLParam(r, "name")
			p, ok := validator.Lookup(name)
			if !ok {
				log.DebugContext(r.Context(), "unknown pattern requested", logger.Pattern(name))
				writeJSON(w, http.StatusNotFound, errorResponse{Error: validator.ErrUnknownPattern.Error()})
				return
			}
			writeJSON(w, http.StatusOK, NewPatternView(p))
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: http.StatusText(http.StatusNotFound)})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: http.StatusText(http.StatusMethodNotAllowed)})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				log.InfoContext(r.Context(), "request",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", status),
					slog.Int("bytes", ww.BytesWritten()),
					logger.Duration(time.Since(start)),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
