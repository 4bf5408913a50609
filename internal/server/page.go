package server

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/matzehuels/cellstack/pkg/buildinfo"
	"github.com/matzehuels/cellstack/pkg/cells"
	"github.com/matzehuels/cellstack/pkg/layout"
	"github.com/matzehuels/cellstack/pkg/pipeline"
	"github.com/matzehuels/cellstack/pkg/render/sink"
	"github.com/matzehuels/cellstack/pkg/render/styles"
	"github.com/matzehuels/cellstack/pkg/sizing"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	Voltage  float64
	Capacity float64
	Limits   sizing.Limits

	Cells  []cells.Spec
	Cell   string
	Modes  []layout.Mode
	Mode   string
	Styles []string
	Style  string

	Config       sizing.Configuration
	LimitReached bool
	NoticeTitle  string
	NoticeBody   string
	Diagram      template.HTML // generated by sink.RenderSVG

	Version string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	opts, err := s.packOptions(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	// The page shows its own advisory and keeps inputs inside the slider ranges.
	opts.Clamp = true
	opts.Notice = false
	opts.Formats = []string{pipeline.FormatSVG}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	req := sizing.Clamp(sizing.Request{Voltage: opts.Voltage, Capacity: opts.Capacity})
	data := pageData{
		Voltage:      req.Voltage,
		Capacity:     req.Capacity,
		Limits:       sizing.DefaultLimits,
		Cells:        s.settings.Catalog.All(),
		Cell:         result.Configuration.Cell.ID,
		Modes:        layout.Modes,
		Mode:         opts.Mode,
		Styles:       styles.Names(),
		Style:        opts.Style,
		Config:       result.Configuration,
		LimitReached: result.Scene.LimitReached,
		NoticeTitle:  sink.NoticeTitle,
		NoticeBody:   sink.NoticeBody(),
		Diagram:      template.HTML(result.Artifacts[pipeline.FormatSVG]),
		Version:      buildinfo.Short(),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
