package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"talent-services/internal/handler/api"
	"talent-services/internal/handler/middleware"
	"talent-services/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, serviceHandler *api.ServiceHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, serviceHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, serviceHandler *api.ServiceHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		admin := apiGroup.Group("/admin/services")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/:provider/:serviceCode/assign/candidate/:candidateId", Handler: serviceHandler.AssignToCandidate},
				{Method: http.MethodPost, Path: "/:provider/:serviceCode/assign/list", Handler: serviceHandler.AssignToList},
				{Method: http.MethodPost, Path: "/:provider/:serviceCode/import", Handler: serviceHandler.ImportInventory},
				{Method: http.MethodPost, Path: "/assignments/:id/redeem", Handler: serviceHandler.Redeem},
				{Method: http.MethodPut, Path: "/:provider/resource/:resourceCode/status", Handler: serviceHandler.UpdateResourceStatus},
				{Method: http.MethodGet, Path: "/assignments/candidate/:candidateId", Handler: serviceHandler.ListCandidateAssignments},
				{Method: http.MethodGet, Path: "/:provider/:serviceCode/resources/candidate/:candidateId", Handler: serviceHandler.ListCandidateResources},
				{Method: http.MethodGet, Path: "/:provider/:serviceCode/available/count", Handler: serviceHandler.CountAvailable},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
