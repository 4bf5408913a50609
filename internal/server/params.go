package server

import (
	"net/url"
	"strconv"

	"github.com/matzehuels/cellstack/pkg/errors"
	"github.com/matzehuels/cellstack/pkg/pipeline"
)

// packOptions builds pipeline options from query parameters, falling back to
// the configured defaults.
func (s *Server) packOptions(q url.Values) (pipeline.Options, error) {
	voltage, err := floatParam(q, "voltage", s.settings.Voltage)
	if err != nil {
		return pipeline.Options{}, err
	}
	capacity, err := floatParam(q, "capacity", s.settings.Capacity)
	if err != nil {
		return pipeline.Options{}, err
	}
	static, err := boolParam(q, "static", false)
	if err != nil {
		return pipeline.Options{}, err
	}
	notice, err := boolParam(q, "notice", true)
	if err != nil {
		return pipeline.Options{}, err
	}
	clamp, err := boolParam(q, "clamp", false)
	if err != nil {
		return pipeline.Options{}, err
	}
	detailed, err := boolParam(q, "detailed", false)
	if err != nil {
		return pipeline.Options{}, err
	}

	return pipeline.Options{
		Voltage:  voltage,
		Capacity: capacity,
		Cell:     stringParam(q, "cell", s.settings.Cell),
		Mode:     stringParam(q, "mode", string(s.settings.Mode)),
		Style:    stringParam(q, "style", s.settings.Style),
		Title:    q.Get("title"),
		Static:   static,
		Notice:   notice,
		Clamp:    clamp,
		Detailed: detailed,
		Logger:   s.logger,
	}, nil
}

func stringParam(q url.Values, name, def string) string {
	if v := q.Get(name); v != "" {
		return v
	}
	return def
}

func floatParam(q url.Values, name string, def float64) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s must be a number, got %q", name, raw)
	}
	return v, nil
}

func boolParam(q url.Values, name string, def bool) (bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "%s must be a boolean, got %q", name, raw)
	}
	return v, nil
}
