package http

import (
	"github.com/gin-gonic/gin"
	"github.com/inspectwise/inspection-service/internal/service"
)

// InspectionRoutes registers the report and photo routes.
type InspectionRoutes struct {
	handler *InspectionHandler
}

// NewInspectionRoutes creates a new InspectionRoutes instance.
func NewInspectionRoutes(inspections service.InspectionService, maxPhotoBytes int64) *InspectionRoutes {
	return &InspectionRoutes{handler: NewInspectionHandler(inspections, maxPhotoBytes)}
}

// RegisterPublicRoutes registers the routes when JWT auth is off.
func (r *InspectionRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	r.register(rg)
}

// RegisterProtectedRoutes registers the routes on a group that already
// carries JWT auth.
func (r *InspectionRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	r.register(rg)
}

func (r *InspectionRoutes) register(rg *gin.RouterGroup) {
	inspections := rg.Group("/inspections")
	{
		inspections.POST("", r.handler.Create)
		inspections.GET("", r.handler.List)
		inspections.GET("/:id", r.handler.Get)
		inspections.GET("/:id/history", r.handler.History)
		inspections.POST("/:id/photos", r.handler.AddPhoto)
		inspections.GET("/:id/photos/:photoId", r.handler.GetPhoto)
		inspections.DELETE("/:id/photos/:photoId", r.handler.RemovePhoto)
	}
}
