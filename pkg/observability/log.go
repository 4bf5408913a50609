package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports every event to a logger at debug level, and failures at
// error level. It implements PipelineHooks, CacheHooks and HTTPHooks.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that write to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger.WithPrefix("obs")}
}

func (h *LogHooks) OnLayoutStart(_ context.Context, mode string, series, parallel int) {
	h.logger.Debug("layout start", "mode", mode, "series", series, "parallel", parallel)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, mode string, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("layout failed", "mode", mode, "err", err)
		return
	}
	h.logger.Debug("layout done", "mode", mode, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, view string, formats []string) {
	h.logger.Debug("render start", "view", view, "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, view string, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("render failed", "view", view, "formats", formats, "err", err)
		return
	}
	h.logger.Debug("render done", "view", view, "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "duration", d)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
