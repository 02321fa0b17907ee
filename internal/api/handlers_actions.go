package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"
	"go.uber.org/zap"

	"github.com/lox/agrimind/internal/metrics"
	"github.com/lox/agrimind/internal/pages"
	"github.com/lox/agrimind/internal/selection"
	"github.com/lox/agrimind/internal/shell"
)

// patch is one fragment to morph into the page by element id.
type patch struct {
	id   string
	data any
}

// shellRequest is the part of the signal tree the shell actions read.
type shellRequest struct {
	Shell shell.State `json:"shell"`
	Route string      `json:"route"`
}

// readSignals decodes datastar signals. It must run before NewSSE, which
// takes over the response.
func (s *Server) readSignals(w http.ResponseWriter, r *http.Request, into any) bool {
	if err := datastar.ReadSignals(r, into); err != nil {
		s.log.Debug("read signals", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "invalid signals", http.StatusBadRequest)
		return false
	}
	return true
}

// stream sends the fragment patches followed by the signal patch.
func (s *Server) stream(w http.ResponseWriter, r *http.Request, patches []patch, signals any) {
	sse := datastar.NewSSE(w, r)
	for _, p := range patches {
		if err := sse.PatchElementTempl(s.fragment(p.id, p.data)); err != nil {
			s.log.Error("patch fragment", zap.String("fragment", p.id), zap.Error(err))
			_ = sse.ConsoleError(err)
			return
		}
		metrics.FragmentPatchesTotal.WithLabelValues(p.id).Inc()
	}
	if err := sse.MarshalAndPatchSignals(signals); err != nil {
		s.log.Error("patch signals", zap.Error(err))
	}
}

func (s *Server) shellPatches(st shell.State, route string) []patch {
	v := shell.Build(st, route)
	return []patch{{"shell-sidebar", v}, {"shell-backdrop", v}}
}

func (s *Server) shellTransition(name string, apply func(*shell.State)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req shellRequest
		if !s.readSignals(w, r, &req) {
			return
		}
		apply(&req.Shell)
		metrics.ShellTransitionsTotal.WithLabelValues(name).Inc()
		s.stream(w, r, s.shellPatches(req.Shell, req.Route), map[string]any{"shell": req.Shell})
	}
}

func (s *Server) handleShellCollapse(w http.ResponseWriter, r *http.Request) {
	s.shellTransition("collapse", (*shell.State).ToggleCollapse)(w, r)
}

func (s *Server) handleShellMobileOpen(w http.ResponseWriter, r *http.Request) {
	s.shellTransition("mobile_open", (*shell.State).OpenMobilePanel)(w, r)
}

func (s *Server) handleShellMobileClose(w http.ResponseWriter, r *http.Request) {
	s.shellTransition("mobile_close", (*shell.State).CloseMobilePanel)(w, r)
}

// handleShellSelect closes the mobile panel and hands navigation to the
// browser.
func (s *Server) handleShellSelect(w http.ResponseWriter, r *http.Request) {
	var req shellRequest
	if !s.readSignals(w, r, &req) {
		return
	}
	intent, ok := req.Shell.SelectEntry(r.URL.Query().Get("path"))
	if !ok {
		http.Error(w, "unknown navigation entry", http.StatusUnprocessableEntity)
		return
	}
	metrics.ShellTransitionsTotal.WithLabelValues("select").Inc()

	sse := datastar.NewSSE(w, r)
	if err := sse.MarshalAndPatchSignals(map[string]any{"shell": req.Shell}); err != nil {
		s.log.Error("patch signals", zap.Error(err))
		return
	}
	if err := sse.Redirect(intent.Path); err != nil {
		s.log.Error("navigate", zap.String("path", intent.Path), zap.Error(err))
	}
}

// rejectSelection maps a failed Apply to a status code. State is left as the
// client sent it. Unknown control names come straight from the URL, so they
// share one metric label.
func (s *Server) rejectSelection(w http.ResponseWriter, page, control string, err error) {
	if errors.Is(err, selection.ErrUnknownControl) {
		control = "unknown"
	}
	metrics.SelectionChangesTotal.WithLabelValues(page, control, "rejected").Inc()
	switch {
	case errors.Is(err, selection.ErrUnknownControl):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, selection.ErrInvalidChoice):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}

func (s *Server) handlePrecisionAction(w http.ResponseWriter, r *http.Request) {
	control := chi.URLParam(r, "control")
	var req struct {
		Page selection.PrecisionSignals `json:"page"`
	}
	if !s.readSignals(w, r, &req) {
		return
	}
	st := selection.PrecisionFromSignals(req.Page)
	if err := st.Apply(control, r.URL.Query().Get("value")); err != nil {
		s.rejectSelection(w, "precision", control, err)
		return
	}

	var (
		p   patch
		err error
	)
	switch control {
	case selection.ControlField:
		p.id = pages.FragmentIrrigation
		p.data, err = pages.BuildIrrigation(st)
	case selection.ControlFertilizer:
		p.id = pages.FragmentFertilizer
		p.data, err = pages.BuildFertilizer(st)
	case selection.ControlRange:
		p.id = pages.FragmentTrend
		p.data, err = pages.BuildMoistureTrend(st)
	}
	if err != nil {
		s.buildFailed(w, "precision", err)
		return
	}
	metrics.SelectionChangesTotal.WithLabelValues("precision", control, "applied").Inc()
	s.stream(w, r, []patch{p}, map[string]any{"page": st.Signals()})
}

func (s *Server) handleCropAction(w http.ResponseWriter, r *http.Request) {
	control := chi.URLParam(r, "control")
	var req struct {
		Page selection.CropSignals `json:"page"`
	}
	if !s.readSignals(w, r, &req) {
		return
	}
	st := selection.CropFromSignals(req.Page)
	if err := st.Apply(control, r.URL.Query().Get("value")); err != nil {
		s.rejectSelection(w, "crops", control, err)
		return
	}

	patches := []patch{}
	if control == selection.ControlField || control == selection.ControlOverlay {
		patches = append(patches, patch{pages.FragmentMap, pages.BuildFieldMap(st)})
	}
	if control == selection.ControlField || control == selection.ControlPeriod {
		h, err := pages.BuildHealthTrend(st)
		if err != nil {
			s.buildFailed(w, "crops", err)
			return
		}
		patches = append(patches, patch{pages.FragmentHealth, h})
	}
	if control == selection.ControlField {
		g, err := pages.BuildFieldGauge(st)
		if err != nil {
			s.buildFailed(w, "crops", err)
			return
		}
		patches = append(patches, patch{pages.FragmentGauge, g})
	}
	metrics.SelectionChangesTotal.WithLabelValues("crops", control, "applied").Inc()
	s.stream(w, r, patches, map[string]any{"page": st.Signals()})
}
