package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ChrisShen93/xstate/internal/foundation/errors"
	"github.com/ChrisShen93/xstate/internal/locale"
	"github.com/ChrisShen93/xstate/internal/metrics"
	"github.com/ChrisShen93/xstate/internal/navbar"
	"github.com/ChrisShen93/xstate/internal/toc"
	"github.com/ChrisShen93/xstate/internal/validation"
)

// maxBodyBytes bounds page-nav request bodies.
const maxBodyBytes = 1 << 20

type healthResponse struct {
	Status  string `json:"status"`
	LoadID  string `json:"load_id"`
	Locales int    `json:"locales"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.Success(w, http.StatusOK, healthResponse{
		Status:  "healthy",
		LoadID:  s.site.LoadID(),
		Locales: len(s.site.Locales()),
	})
}

func (s *Server) handleLocales(w http.ResponseWriter, _ *http.Request) {
	s.Success(w, http.StatusOK, s.site.Locales())
}

type navResponse struct {
	Locale     locale.Locale      `json:"locale"`
	Links      []navbar.Link      `json:"links"`
	Alternates []navbar.Alternate `json:"alternates"`
}

func (s *Server) handleNav(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Query().Get("path")
	if p == "" {
		p = "/"
	}
	nav := s.site.ResolvePageNav(p, nil, toc.Config{})
	s.Success(w, http.StatusOK, navResponse{Locale: nav.Locale, Links: nav.NavLinks, Alternates: nav.Alternates})
}

func (s *Server) handleSidebar(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "locale")
	tree, ok := s.site.Sidebar(code)
	if !ok {
		s.Error(w, r, errors.NotFoundError("unknown locale").
			WithCode(errors.CodeUnknownLocale).
			WithContext("locale", code).
			Build())
		return
	}
	s.Success(w, http.StatusOK, tree)
}

// PageNavRequest is the body of POST /api/v1/page-nav.
type PageNavRequest struct {
	Path     string        `json:"path"`
	Headings []toc.Heading `json:"headings"`
	TOC      *toc.Config   `json:"toc,omitempty"`
}

func (s *Server) handlePageNav(w http.ResponseWriter, r *http.Request) {
	var req PageNavRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.Error(w, r, errors.WrapError(err, errors.CategoryParse, "invalid page-nav request body").Build())
		return
	}
	if req.Path == "" {
		s.Error(w, r, errors.ValidationError("path is required").WithContext("field", "path").Build())
		return
	}

	var cfg toc.Config
	if req.TOC != nil {
		if err := req.TOC.Validate(); err != nil {
			s.Error(w, r, errors.WrapError(err, errors.CategoryValidation, "invalid toc levels").
				WithCode(errors.CodeInvalidTOC).
				Build())
			return
		}
		cfg = *req.TOC
	}

	start := time.Now()
	nav := s.site.ResolvePageNav(req.Path, req.Headings, cfg)
	s.recorder.ObserveResolveDuration(time.Since(start))

	outcome := metrics.OutcomeMatched
	if len(nav.Breadcrumb) == 0 {
		outcome = metrics.OutcomeUnmatched
	}
	s.recorder.IncResolution(nav.Locale.Code, outcome)

	s.Success(w, http.StatusOK, nav)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	s.Success(w, http.StatusOK, validation.Output(s.site.ValidateAll(), ""))
}
