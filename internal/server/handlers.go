package server

import (
	"net/http"

	"github.com/matzehuels/cellstack/pkg/buildinfo"
	"github.com/matzehuels/cellstack/pkg/cells"
	"github.com/matzehuels/cellstack/pkg/pipeline"
)

const (
	contentTypeSVG  = "image/svg+xml"
	contentTypeJSON = "application/json"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type cellsResponse struct {
	Default string       `json:"default"`
	Cells   []cells.Spec `json:"cells"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) handleCells(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cellsResponse{
		Default: s.settings.Cell,
		Cells:   s.settings.Catalog.All(),
	})
}

func (s *Server) handlePack(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, pipeline.VizTypePack, pipeline.FormatJSON, contentTypeJSON)
}

func (s *Server) handlePackSVG(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, pipeline.VizTypePack, pipeline.FormatSVG, contentTypeSVG)
}

func (s *Server) handleSchematicSVG(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, pipeline.VizTypeSchematic, pipeline.FormatSVG, contentTypeSVG)
}

func (s *Server) serveArtifact(w http.ResponseWriter, r *http.Request, vizType, format, contentType string) {
	opts, err := s.packOptions(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.VizType = vizType
	opts.Formats = []string{format}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Pack-Configuration", result.Configuration.Label())
	if result.Scene.LimitReached {
		w.Header().Set("X-Pack-Limit-Reached", "true")
	}
	_, _ = w.Write(result.Artifacts[format])
}
