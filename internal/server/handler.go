package server

import (
	"errors"
	"net/http"

	"github.com/KaramelBytes/likelens/internal/category"
	"github.com/KaramelBytes/likelens/internal/dataset"
	"github.com/KaramelBytes/likelens/internal/pipeline"
	"github.com/KaramelBytes/likelens/internal/regression"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler serves the index, analysis and API routes.
type Handler struct {
	analyzer *pipeline.Analyzer
	log      zerolog.Logger
}

// NewHandler creates a Handler over analyzer.
func NewHandler(analyzer *pipeline.Analyzer, log zerolog.Logger) *Handler {
	return &Handler{analyzer: analyzer, log: log}
}

// Index lists the categories.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Categories": h.analyzer.Registry().All()})
}

// Analyze renders the results page. Unknown categories redirect to the index.
func (h *Handler) Analyze(c *gin.Context) {
	key := c.Query("category")
	rep, err := h.analyzer.Analyze(key)
	if errors.Is(err, category.ErrNotFound) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	if err != nil {
		status, msg := h.classify(c, key, err)
		c.String(status, msg)
		return
	}
	c.HTML(http.StatusOK, "results.html", rep)
}

// AnalyzeJSON returns the composed report as JSON.
func (h *Handler) AnalyzeJSON(c *gin.Context) {
	key := c.Query("category")
	rep, err := h.analyzer.Analyze(key)
	if errors.Is(err, category.ErrNotFound) {
		respondError(c, http.StatusNotFound, "unknown category: "+key)
		return
	}
	if err != nil {
		status, msg := h.classify(c, key, err)
		respondError(c, status, msg)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// Categories lists the registry.
func (h *Handler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyzer.Registry().All())
}

// classify maps a pipeline error to a status and a client-safe message, and
// logs it once.
func (h *Handler) classify(c *gin.Context, key string, err error) (int, string) {
	var (
		status int
		msg    string
		se     *dataset.SchemaError
	)
	switch {
	case errors.As(err, &se):
		status, msg = http.StatusBadRequest, capitalize(se.Error())+"."
	case errors.Is(err, regression.ErrDegenerateInput):
		status, msg = http.StatusUnprocessableEntity, degenerateMsg
	case errors.Is(err, dataset.ErrDataUnavailable):
		status, msg = http.StatusInternalServerError, "Dataset is unavailable."
	default:
		status, msg = http.StatusInternalServerError, "Analysis failed."
	}
	ev := h.log.Warn()
	if status >= http.StatusInternalServerError {
		ev = h.log.Error()
	}
	ev.Err(err).Str("request_id", c.GetString(requestIDHeader)).Str("category", key).Int("status", status).Msg("analysis failed")
	return status, msg
}

const degenerateMsg = "Cannot fit a regression line: the dataset needs at least two videos with different view counts."

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
