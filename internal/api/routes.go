package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cloud-ru/feasibility-go/internal/tools"
)

// NewRouter создаёт gin-движок с middleware и всеми маршрутами
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger())

	SetupRoutes(r, h)
	return r
}

// SetupRoutes настраивает маршруты API
func SetupRoutes(r *gin.Engine, h *Handler) {
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		// Расчёты
		api.POST("/calculate", h.Tool(tools.ToolCalculate))
		api.POST("/sensitivity", h.Tool(tools.ToolSensitivity))
		api.POST("/simulate", h.Tool(tools.ToolSimulate))
		api.GET("/results/last", h.LastResult)
		api.GET("/report", h.Report)
		api.POST("/tools/:name", h.CallTool)

		// Сохранённые проекты
		projects := api.Group("/projects")
		{
			projects.GET("", h.ListProjects)
			projects.POST("", h.SaveProject)
			projects.DELETE("", h.DeleteProjects)
			projects.GET("/latest", h.LatestProject)
			projects.GET("/:id", h.GetProject)
			projects.POST("/:id/calculate", h.CalculateProject)
		}
	}
}
