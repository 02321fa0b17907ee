package api

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/lox/agrimind/internal/imagegen"
	"github.com/lox/agrimind/internal/metrics"
	"github.com/lox/agrimind/internal/mockdata"
)

// handleOGImage serves the social preview image, regenerating it once the
// cache expires.
func (s *Server) handleOGImage(w http.ResponseWriter, r *http.Request) {
	data, hit, err := s.ogCache.GetOrGenerate(func() ([]byte, error) {
		return imagegen.GenerateOGImage(imagegen.OGImageData{
			Score:    mockdata.FarmHealthScore,
			Headline: "Farm Health Score",
			Caption:  "Soil moisture 64% · Crop health 91%",
		})
	})
	if err != nil {
		s.log.Error("generate og image", zap.Error(err))
		http.Error(w, "Image generation failed", http.StatusInternalServerError)
		return
	}
	if hit {
		metrics.OGImageCacheTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.OGImageCacheTotal.WithLabelValues("miss").Inc()
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "public, max-age=600")
	_, _ = w.Write(data)
}
