package http

import (
	"TubeCourse/internal/delivery/http/controllers"
	"TubeCourse/internal/delivery/http/controllers/course"
	"TubeCourse/internal/delivery/http/controllers/middleware"
	"TubeCourse/internal/delivery/http/controllers/playlist"
	"TubeCourse/internal/service"
	"TubeCourse/pkg/logger"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const defaultOrigin = "http://localhost:5173"

func InitRoutes(l logger.Log, u service.Collection, allowOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if len(allowOrigins) == 0 {
		allowOrigins = []string{defaultOrigin}
	}
	config := cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	r.Use(cors.New(config))

	statusController := controllers.NewStatusHandler()
	playlistController := playlist.NewPlaylistHandler(l, u.PlaylistService)
	managementController := course.NewManagementHandler(l, u.CourseService)
	queryController := course.NewQueryHandler(l, u.CourseService)
	exportController := course.NewExportHandler(l, u.CourseService)

	api := r.Group("/api", middleware.LoggingMiddleware(l))
	{
		api.GET("/status", statusController.Status)
		api.POST("/process-playlist", playlistController.ProcessPlaylist)

		courses := api.Group("/courses")
		{
			courses.GET("", queryController.SearchCourses)
			courses.POST("", managementController.CreateCourse)
			courses.GET("/:course_id", queryController.CourseByID)
			courses.PUT("/:course_id", managementController.UpdateCourse)
			courses.GET("/:course_id/stats", queryController.CourseStats)
			courses.GET("/:course_id/export", exportController.Download)
			courses.POST("/:course_id/exports", exportController.Publish)
		}
	}
	return r
}
