package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/greenthumb/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(h *handlers.GardenHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.GET("/plants", h.ListPlants)
	api.POST("/plants", h.CreatePlant)
	api.POST("/plants/identify", h.IdentifyPlant)
	api.GET("/plants/:id", h.GetPlant)
	api.PATCH("/plants/:id", h.UpdatePlant)
	api.DELETE("/plants/:id", h.DeletePlant)
	api.GET("/plants/:id/care-tasks", h.ListPlantCareTasks)
	api.GET("/plants/:id/harvests", h.ListPlantHarvests)
	api.GET("/plants/:id/harvest-stats", h.PlantHarvestStats)

	api.GET("/garden-beds", h.ListGardenBeds)
	api.POST("/garden-beds", h.CreateGardenBed)
	api.GET("/garden-beds/:id", h.GetGardenBed)
	api.PATCH("/garden-beds/:id", h.UpdateGardenBed)
	api.DELETE("/garden-beds/:id", h.DeleteGardenBed)
	api.GET("/garden-beds/:id/plants", h.ListBedPlants)

	api.GET("/care-tasks", h.ListCareTasks)
	api.POST("/care-tasks", h.CreateCareTask)
	api.GET("/care-tasks/upcoming", h.UpcomingCareTasks)
	api.GET("/care-tasks/overdue", h.OverdueCareTasks)
	api.GET("/care-tasks/:id", h.GetCareTask)
	api.PATCH("/care-tasks/:id", h.UpdateCareTask)
	api.DELETE("/care-tasks/:id", h.DeleteCareTask)
	api.POST("/care-tasks/:id/complete", h.CompleteCareTask)

	api.GET("/harvests", h.ListHarvests)
	api.POST("/harvests", h.CreateHarvest)
	api.GET("/harvests/:id", h.GetHarvest)
	api.PATCH("/harvests/:id", h.UpdateHarvest)
	api.DELETE("/harvests/:id", h.DeleteHarvest)

	api.GET("/guides", h.ListGuides)
	api.GET("/guides/:id", h.GetGuide)

	api.GET("/weather/current", h.CurrentWeather)
	api.GET("/weather/forecast", h.WeatherForecast)
	api.GET("/weather/alerts", h.WeatherAlerts)

	api.GET("/location", h.GetLocation)
	api.PUT("/location", h.SaveLocation)
	api.GET("/location/current", h.CurrentPosition)
	api.GET("/location/reverse-geocode", h.ReverseGeocode)
	api.GET("/location/weather", h.LocalWeather)
	api.GET("/location/search", h.SearchLocations)

	api.GET("/profile", h.GetProfile)
	api.PATCH("/profile", h.UpdateProfile)
	api.DELETE("/profile", h.DeleteAccount)
	api.POST("/profile/avatar", h.UploadAvatar)
	api.PATCH("/profile/preferences", h.UpdatePreferences)

	api.GET("/pests", h.ListPests)
	api.POST("/pests/identify", h.IdentifyPest)
	api.GET("/pests/:id/treatments", h.PestTreatments)

	api.GET("/reports/daily", h.DailyReport)
	api.GET("/reports/history", h.ReportHistory)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
