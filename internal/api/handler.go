package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloud-ru/feasibility-go/internal/model"
	"github.com/cloud-ru/feasibility-go/internal/projection"
	"github.com/cloud-ru/feasibility-go/internal/report"
	"github.com/cloud-ru/feasibility-go/internal/storage"
	"github.com/cloud-ru/feasibility-go/internal/tools"
)

// Handler обслуживает HTTP API расчётов и сохранённых проектов
type Handler struct {
	tools   map[string]tools.ToolHandler
	session *projection.Session
	store   storage.Store
}

// NewHandler создаёт обработчик
func NewHandler(registry map[string]tools.ToolHandler, session *projection.Session, store storage.Store) *Handler {
	return &Handler{tools: registry, session: session, store: store}
}

// Health handles GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Tool возвращает обработчик, вызывающий инструмент name с телом запроса как параметрами
func (h *Handler) Tool(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.runTool(c, name)
	}
}

// CallTool handles POST /api/v1/tools/:name
func (h *Handler) CallTool(c *gin.Context) {
	h.runTool(c, c.Param("name"))
}

func (h *Handler) runTool(c *gin.Context, name string) {
	params := map[string]interface{}{}
	if err := c.ShouldBindJSON(&params); err != nil && !errors.Is(err, io.EOF) {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	h.run(c, name, params)
}

func (h *Handler) run(c *gin.Context, name string, params map[string]interface{}) {
	tool, ok := h.tools[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown tool: " + name})
		return
	}

	out, err := tool(c.Request.Context(), params)
	if err != nil {
		c.Error(err)
		status := http.StatusInternalServerError
		if errors.Is(err, tools.ErrInvalidParams) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// LastResult handles GET /api/v1/results/last
func (h *Handler) LastResult(c *gin.Context) {
	last := h.session.Last()
	if last == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no calculation yet"})
		return
	}
	c.JSON(http.StatusOK, last)
}

// Report handles GET /api/v1/report. Параметры: format=markdown|html,
// sensitivity=true добавляет анализ чувствительности.
func (h *Handler) Report(c *gin.Context) {
	last := h.session.Last()
	if last == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no calculation yet"})
		return
	}

	var sens *projection.SensitivityResult
	if c.Query("sensitivity") == "true" {
		sens = h.session.Sensitivity(nil)
	}

	if c.Query("format") == "markdown" {
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(report.Markdown(last, sens)))
		return
	}
	page, err := report.HTML(last, sens)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// SaveProject handles POST /api/v1/projects. Без inputs сохраняются
// параметры последнего расчёта.
func (h *Handler) SaveProject(c *gin.Context) {
	var state model.ProjectState
	if err := c.ShouldBindJSON(&state); err != nil && !errors.Is(err, io.EOF) {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project"})
		return
	}
	if state.Inputs == nil {
		last := h.session.Last()
		if last == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "inputs required"})
			return
		}
		state.Inputs = last.Inputs.Clone()
	}

	if err := h.store.Save(c.Request.Context(), &state); err != nil {
		h.storageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

// ListProjects handles GET /api/v1/projects
func (h *Handler) ListProjects(c *gin.Context) {
	list, err := h.store.List(c.Request.Context())
	if err != nil {
		h.storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(list),
		"projects": list,
	})
}

// LatestProject handles GET /api/v1/projects/latest
func (h *Handler) LatestProject(c *gin.Context) {
	state, err := h.store.Latest(c.Request.Context())
	if err != nil {
		h.storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetProject handles GET /api/v1/projects/:id
func (h *Handler) GetProject(c *gin.Context) {
	state, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// CalculateProject handles POST /api/v1/projects/:id/calculate:
// рассчитывает сохранённый проект как базовый
func (h *Handler) CalculateProject(c *gin.Context) {
	state, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storageError(c, err)
		return
	}
	h.run(c, tools.ToolCalculate, map[string]interface{}{"inputs": state.Inputs})
}

// DeleteProjects handles DELETE /api/v1/projects
func (h *Handler) DeleteProjects(c *gin.Context) {
	if err := h.store.DeleteAll(c.Request.Context()); err != nil {
		h.storageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) storageError(c *gin.Context, err error) {
	c.Error(err)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
