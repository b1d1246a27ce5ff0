package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"kikabraids/internal/config"
	"kikabraids/internal/database"
	"kikabraids/internal/middleware"
	"kikabraids/internal/modules/admin"
	"kikabraids/internal/modules/booking"
	"kikabraids/internal/modules/catalog"
	"kikabraids/internal/modules/testimonial"
	"kikabraids/internal/modules/upload"
	jwtsvc "kikabraids/internal/pkg/jwt"
	"kikabraids/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}
	if err := database.SeedServices(db); err != nil {
		log.Fatal(err)
	}

	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	adminService, err := admin.NewService(cfg.AdminPassword, j)
	if err != nil {
		log.Fatal(err)
	}
	adminHandler := admin.NewHandler(adminService)

	catalogService := catalog.NewService(serviceRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, serviceRepo)
	bookingHandler := booking.NewHandler(bookingService)

	testimonialService := testimonial.NewService(testimonialRepo)
	testimonialHandler := testimonial.NewHandler(testimonialService)

	uploadService := upload.NewService(cfg.UploadsDir)
	uploadHandler := upload.NewHandler(uploadService)

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		// public
		adminHandler.RegisterRoutes(api)
		catalogHandler.RegisterPublicRoutes(api)
		bookingHandler.RegisterPublicRoutes(api)
		testimonialHandler.RegisterPublicRoutes(api)

		// admin (token checked on every request)
		protected := api.Group("/")
		protected.Use(middleware.AdminAuth(j))
		{
			catalogHandler.RegisterAdminRoutes(protected)
			bookingHandler.RegisterAdminRoutes(protected)
			testimonialHandler.RegisterAdminRoutes(protected)
			uploadHandler.RegisterAdminRoutes(protected)
		}
	}

	r.Static("/uploads", cfg.UploadsDir)
	r.NoRoute(spaHandler(cfg.WebDir))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// spaHandler serves the static client bundle, falling back to index.html so
// client-side routes resolve.
func spaHandler(webDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		path := filepath.Join(webDir, filepath.Clean(c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.File(filepath.Join(webDir, "index.html"))
	}
}
