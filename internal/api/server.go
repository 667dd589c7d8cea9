package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/Emmabm/web-lasrocas-sub000/docs"
	v1 "github.com/Emmabm/web-lasrocas-sub000/internal/api/handler/v1"
	"github.com/Emmabm/web-lasrocas-sub000/internal/api/middleware"
	"github.com/Emmabm/web-lasrocas-sub000/internal/config"
	"github.com/Emmabm/web-lasrocas-sub000/internal/domain"
	"github.com/Emmabm/web-lasrocas-sub000/internal/repository"
	"github.com/Emmabm/web-lasrocas-sub000/internal/repository/dao"
	"github.com/Emmabm/web-lasrocas-sub000/internal/service"
)

type Server struct {
	Config    *config.AppConfig
	Router    *gin.Engine
	Seating   *service.SeatingService
	FloorPlan *v1.FloorPlanHandler
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	s.Seating = s.initSeatingService(db)
	seatingHandler := v1.NewSeatingHandler(s.Seating)
	s.FloorPlan = v1.NewFloorPlanHandler(s.Seating, conf.API.AllowedCORSDomains)
	s.MountHandlers(seatingHandler, s.FloorPlan)

	return s
}

func (s *Server) initSeatingService(db *gorm.DB) *service.SeatingService {
	seatingRepo := repository.NewSeatingRepository(dao.NewSeatingDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))

	return service.NewSeatingService(seatingRepo, eventRepo, PlannerConfig(s.Config.Seating))
}

// PlannerConfig turns the seating section of the config into planner settings.
func PlannerConfig(conf *config.SeatingConfig) service.PlannerConfig {
	if conf == nil {
		return service.PlannerConfig{}
	}
	return service.PlannerConfig{
		SavedFlagTTL: conf.SavedFlagTTL,
		DefaultDecoration: domain.Decoration{
			Tablecloth:  conf.DefaultDecoration.Tablecloth,
			NapkinColor: conf.DefaultDecoration.NapkinColor,
			Centerpiece: conf.DefaultDecoration.Centerpiece,
		},
	}
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(seatingHandler *v1.SeatingHandler, floorPlanHandler *v1.FloorPlanHandler) {
	const basePath = "/api/v1"

	events := s.Router.Group(basePath + "/events/:eventID")
	{
		events.GET("/layout", seatingHandler.HandleGetLayout)
		events.POST("/layout/reload", seatingHandler.HandleReloadLayout)
		events.POST("/layout/save", seatingHandler.HandleSaveLayout)

		events.POST("/tables/:tableID/select", seatingHandler.HandleSelectTable)
		events.POST("/tables/:tableID/groups", seatingHandler.HandleAddGroup)
		events.DELETE("/tables/:tableID/groups/:groupID", seatingHandler.HandleRemoveGroup)
		events.POST("/tables/:tableID/commit", seatingHandler.HandleCommitTable)
		events.POST("/tables/:tableID/cancel", seatingHandler.HandleCancelEdit)
		events.PUT("/tables/:tableID", seatingHandler.HandleUpdateTable)
		events.PATCH("/tables/:tableID/position", seatingHandler.HandleMoveTable)

		events.PUT("/decoration", seatingHandler.HandleUpdateDecoration)
		events.POST("/decoration/save", seatingHandler.HandleSaveDecoration)

		events.GET("/floorplan/ws", floorPlanHandler.HandleWebSocket)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Las Rocas seating planner API"
	docs.SwaggerInfo.Description = "Table layout, guest seating and decoration for events."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
