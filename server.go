package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"agyal-site/team"
	"agyal-site/templates"
	"agyal-site/yields"

	"github.com/a-h/templ"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	visitorCookie   = "agyal_visitor"
	shutdownTimeout = 10 * time.Second
)

type selectionRecorder interface {
	Record(ctx context.Context, visitorID, country string) error
}

type server struct {
	table    *yields.Table
	log      *zap.SugaredLogger
	recorder selectionRecorder // nil when the selection log is disabled
	now      func() time.Time
}

func newServer(table *yields.Table, log *zap.SugaredLogger, recorder selectionRecorder) *server {
	return &server{
		table:    table,
		log:      log,
		recorder: recorder,
		now:      time.Now,
	}
}

func (s *server) routes() http.Handler {
	router := httprouter.New()

	router.GET("/", s.homeHandler)
	router.HEAD("/", s.homeHandler)
	router.GET("/management-team", s.teamHandler)
	router.HEAD("/management-team", s.teamHandler)
	router.GET("/healthz", s.healthHandler)
	router.HEAD("/healthz", s.healthHandler)

	router.GET("/api/countries", s.countriesHandler)
	router.GET("/api/yields/:country", s.yieldHandler)

	router.NotFound = http.HandlerFunc(s.notFoundHandler)

	return s.logRequests(router)
}

func (s *server) homeHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sel := yields.NewSelection(s.table)
	data := templates.HomePageData{
		Groups: countryGroups(s.table),
		Year:   s.now().Year(),
	}
	status := http.StatusOK

	if country := r.URL.Query().Get("country"); country != "" {
		if err := sel.Select(country); err != nil {
			s.log.Warnw("comparison requested for unknown country", "country", country)
			data.Selected = country
			data.Unavailable = true
			status = http.StatusNotFound
		} else {
			s.recordSelection(w, r, country)
		}
	}

	if !data.Unavailable {
		data.Selected = sel.Country()
		entry, err := sel.Comparison()
		if err != nil {
			s.log.Errorw("selected country missing from yield table", "country", sel.Country(), "error", err)
			data.Unavailable = true
			status = http.StatusNotFound
		} else {
			data.Cards = comparisonCards(entry)
		}
	}

	templ.Handler(templates.Home(data), templ.WithStatus(status)).ServeHTTP(w, r)
}

func (s *server) teamHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	members := team.Roster()
	data := templates.TeamPageData{
		Members: make([]templates.TeamMember, len(members)),
		Year:    s.now().Year(),
	}
	for i, m := range members {
		data.Members[i] = templates.TeamMember{Name: m.Name, Role: m.Role, Bio: m.Bio}
	}
	templ.Handler(templates.Team(data)).ServeHTTP(w, r)
}

func (s *server) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	templ.Handler(templates.NotFound(s.now().Year()), templ.WithStatus(http.StatusNotFound)).ServeHTTP(w, r)
}

func (s *server) healthHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) countriesHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"countries": s.table.Countries(),
		"default":   yields.NewSelection(s.table).Country(),
	})
}

func (s *server) yieldHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	country := ps.ByName("country")
	entry, err := s.table.Comparison(country)
	if errors.Is(err, yields.ErrNotFound) {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		s.log.Errorw("yield lookup failed", "country", country, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := sonic.ConfigDefault.NewEncoder(w).Encode(v); err != nil {
		s.log.Errorw("failed to encode response", "error", err)
	}
}

// recordSelection logs an explicit choice. Failures never affect the page.
func (s *server) recordSelection(w http.ResponseWriter, r *http.Request, country string) {
	if s.recorder == nil {
		return
	}

	visitorID := ""
	if c, err := r.Cookie(visitorCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			visitorID = id.String()
		}
	}
	if visitorID == "" {
		visitorID = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     visitorCookie,
			Value:    visitorID,
			Path:     "/",
			MaxAge:   int((365 * 24 * time.Hour).Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	if err := s.recorder.Record(r.Context(), visitorID, country); err != nil {
		s.log.Warnw("failed to record selection", "country", country, "error", err)
	}
}

func countryGroups(t *yields.Table) []templates.CountryGroup {
	regions := t.Regions()
	out := make([]templates.CountryGroup, len(regions))
	for i, r := range regions {
		out[i] = templates.CountryGroup{Name: r.Name, Countries: r.Countries}
	}
	return out
}

func comparisonCards(e yields.Entry) []templates.RateCard {
	return []templates.RateCard{
		{
			Title:   "Traditional Banks",
			High:    yields.FormatPercent(e.Traditional.High),
			Average: yields.FormatPercent(e.Traditional.Average),
			Note:    "Based on average yields from top 5 banks in " + e.Country,
		},
		{
			Title:     "AGYAL Platform",
			High:      yields.FormatPercent(e.Agyal.High),
			Average:   yields.FormatPercent(e.Agyal.Average),
			Note:      "AGYAL offers competitive yields through innovative financial products and efficient operations",
			Highlight: true,
		},
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Infow("http_request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", float64(time.Since(start).Microseconds())/1000,
		)
	})
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down.
func serve(ctx context.Context, cfg Config, log *zap.SugaredLogger) error {
	var recorder selectionRecorder
	if cfg.DBPath != "" {
		store, err := openSelectionStore(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		recorder = store
		log.Infow("selection log enabled", "path", cfg.DBPath)
	}

	app := newServer(yields.Default(), log, recorder)
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     zap.NewStdLog(log.Desugar()),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infow("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Infow("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
