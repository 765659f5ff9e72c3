package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"luct-reporting-backend/app/repository"
	"luct-reporting-backend/app/service"
	"luct-reporting-backend/database"
	"luct-reporting-backend/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// =================================================================
	// LOAD ENV
	// =================================================================
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env tidak ditemukan, menggunakan environment default")
	}

	// =================================================================
	// INIT DB (POSTGRES)
	// =================================================================
	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("❌ Gagal koneksi database: %v", err)
	}

	// =================================================================
	// SEED DATA (USERS + COURSES + CLASSES + REPORTS + RATINGS)
	// =================================================================
	database.RunSeeders(db)

	// =================================================================
	// REPOSITORIES
	// =================================================================
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	classRepo := repository.NewClassRepository(db)
	reportRepo := repository.NewReportRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	// =================================================================
	// SERVICES
	// =================================================================
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	courseService := service.NewCourseService(courseRepo)
	classService := service.NewClassService(classRepo)
	reportService := service.NewReportService(reportRepo, classRepo)
	ratingService := service.NewRatingService(ratingRepo)

	// =================================================================
	// ROUTER
	// =================================================================
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.NewAuthHandler(authService).SetupAuthRoutes(r)
	routes.NewUserHandler(userService).SetupUserRoutes(r)
	routes.NewCourseHandler(courseService).SetupCourseRoutes(r)
	routes.NewClassHandler(classService).SetupClassRoutes(r)
	routes.NewReportHandler(reportService).SetupReportRoutes(r)
	routes.NewRatingHandler(ratingService).SetupRatingRoutes(r)

	// Root endpoint
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "LUCT Reporting API RUNNING",
			"version": "1.0.0",
		})
	})

	// Health check
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Tes koneksi database
	r.GET("/test-db", func(c *gin.Context) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "DB connection failed",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "DB connected successfully"})
	})

	// =================================================================
	// START SERVER
	// =================================================================
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running at http://localhost:" + port)

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Gagal menjalankan server: %v", err)
	}
}
