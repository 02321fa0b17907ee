package api

import (
	"encoding/json"
	"net/http"

	"github.com/lox/agrimind/internal/mockdata"
	"github.com/lox/agrimind/internal/models"
	"github.com/lox/agrimind/internal/widgets"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// SensorJSON is a sensor with its derived battery tier.
type SensorJSON struct {
	models.Sensor
	BatteryTier widgets.BatteryLevel `json:"battery_tier"`
}

func (s *Server) handleAPISensors(w http.ResponseWriter, r *http.Request) {
	sensors := mockdata.Sensors()
	out := make([]SensorJSON, len(sensors))
	for i, sn := range sensors {
		out[i] = SensorJSON{Sensor: sn, BatteryTier: widgets.BatteryTier(sn.BatteryPct)}
	}
	writeJSON(w, http.StatusOK, out)
}

// handleAPIAlerts serves a feed selected by ?feed=precision|field.
func (s *Server) handleAPIAlerts(w http.ResponseWriter, r *http.Request) {
	switch feed := r.URL.Query().Get("feed"); feed {
	case "", "precision":
		writeJSON(w, http.StatusOK, mockdata.PrecisionAlerts())
	case "field":
		writeJSON(w, http.StatusOK, mockdata.FieldAlerts())
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown feed " + feed})
	}
}

// handleAPIOverlays serves every legend, or just one for ?kind=.
func (s *Server) handleAPIOverlays(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query().Get("kind"); q != "" {
		kind, ok := models.ParseOverlayKind(q)
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown overlay " + q})
			return
		}
		writeJSON(w, http.StatusOK, widgets.LegendFor(kind))
		return
	}
	var out []widgets.Legend
	for _, k := range models.AllOverlayKinds() {
		out = append(out, widgets.LegendFor(k))
	}
	writeJSON(w, http.StatusOK, out)
}
