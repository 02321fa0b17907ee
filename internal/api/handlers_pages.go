package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/lox/agrimind/internal/metrics"
	"github.com/lox/agrimind/internal/pages"
	"github.com/lox/agrimind/internal/selection"
	"github.com/lox/agrimind/internal/shell"
)

// dashboardSignals is the full client signal tree for a page.
type dashboardSignals struct {
	Shell shell.State `json:"shell"`
	Route string      `json:"route"`
	Page  any         `json:"page,omitempty"`
}

// PageData wraps a page view model with the shell it renders inside.
type PageData struct {
	Title   string
	Path    string
	Shell   shell.View
	Signals dashboardSignals
	Page    any
}

func newPageData(title, path string, signals any, page any) PageData {
	var st shell.State
	return PageData{
		Title:   title,
		Path:    path,
		Shell:   shell.Build(st, path),
		Signals: dashboardSignals{Shell: st, Route: path, Page: signals},
		Page:    page,
	}
}

// renderPage executes into a buffer so template failures become a clean 500.
func (s *Server) renderPage(w http.ResponseWriter, name string, data PageData) {
	start := time.Now()
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		s.log.Error("render page", zap.String("page", name), zap.Error(err))
		metrics.PageRendersTotal.WithLabelValues(name, "error").Inc()
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	metrics.PageRendersTotal.WithLabelValues(name, "ok").Inc()
	metrics.PageRenderLatency.WithLabelValues(name).Observe(time.Since(start).Seconds())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) buildFailed(w http.ResponseWriter, page string, err error) {
	s.log.Error("build page", zap.String("page", page), zap.Error(err))
	metrics.PageRendersTotal.WithLabelValues(page, "error").Inc()
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// ErrUnknownPage is returned for paths with no page or placeholder.
var ErrUnknownPage = errors.New("unknown page")

// page builds the template name and data for a dashboard path. The name is
// set even when building fails so the failure can be attributed.
func (s *Server) page(path string, p selection.Precision, c selection.Crop) (string, PageData, error) {
	switch path {
	case "/dashboard":
		view, err := pages.BuildOverview()
		return "overview", newPageData("Overview", path, nil, view), err
	case "/dashboard/precision":
		view, err := pages.BuildPrecision(p)
		return "precision", newPageData("Precision Farming", path, p.Signals(), view), err
	case "/dashboard/crops":
		view, err := pages.BuildCrop(c)
		return "crops", newPageData("Crop Monitoring", path, c.Signals(), view), err
	}
	view, ok := pages.BuildPlaceholder(path)
	if !ok {
		return "", PageData{}, fmt.Errorf("%w: %s", ErrUnknownPage, path)
	}
	return "placeholder", newPageData(view.Title, path, nil, view), nil
}

// servePage renders a page with every control at its initial value.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request, path string) {
	name, data, err := s.page(path, selection.DefaultPrecision(), selection.DefaultCrop())
	if errors.Is(err, ErrUnknownPage) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.buildFailed(w, name, err)
		return
	}
	s.renderPage(w, name, data)
}

// Snapshot writes the full HTML of a dashboard page for the given
// selections.
func (s *Server) Snapshot(w io.Writer, path string, p selection.Precision, c selection.Crop) error {
	name, data, err := s.page(path, p, c)
	if err != nil {
		return err
	}
	return s.tmpl.ExecuteTemplate(w, name, data)
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, "/dashboard")
}

func (s *Server) handlePrecision(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, "/dashboard/precision")
}

func (s *Server) handleCrops(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, "/dashboard/crops")
}

func (s *Server) handlePlaceholder(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, "/dashboard/"+chi.URLParam(r, "module"))
}
