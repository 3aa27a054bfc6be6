package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"versehub/auth"
	"versehub/bible"
	"versehub/cache"
	"versehub/category"
	"versehub/classification"
	"versehub/common"
	"versehub/database"
	"versehub/site"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as is")
	}

	db := common.ConnectDb()
	if db == nil {
		log.Fatal("Failed to connect to database")
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	if err := database.SeedReferenceData(db); err != nil {
		log.Fatal("Failed to seed reference data:", err)
	}

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-Device-ID"},
		AllowCredentials: true,
	}))

	// As agregações públicas são as rotas mais caras e idênticas para todo
	// mundo, um cache curto já segura a carga
	router.Use(cache.Middleware("community", time.Minute, "/api/verse-stats", "/api/community-feed"))

	router.LoadHTMLGlob("*/views/*.html")

	authModule := auth.NewAuthModule(db)
	authModule.RegisterRoutes(router)

	classificationModule := classification.NewClassificationModule(db, authModule)
	classificationModule.RegisterRoutes(router)

	bibleModule := bible.NewBibleModule(db, bible.NewClient(), authModule)
	bibleModule.RegisterRoutes(router)

	categoryModule := category.NewCategoryModule(db, authModule)
	categoryModule.RegisterRoutes(router)

	siteModule := site.NewSiteModule(db)
	siteModule.RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func allowedOrigins() []string {
	if origins := os.Getenv("cors_origins"); origins != "" {
		return []string{origins}
	}
	return []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
		"capacitor://localhost",
	}
}
