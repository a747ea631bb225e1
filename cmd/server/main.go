package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Bullfrogs2000/webdev-rest/internal/config"
	"github.com/Bullfrogs2000/webdev-rest/internal/controllers"
	"github.com/Bullfrogs2000/webdev-rest/internal/database"
	"github.com/Bullfrogs2000/webdev-rest/internal/models"
	"github.com/Bullfrogs2000/webdev-rest/internal/services"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get database handle: %v", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	// Backstop schema: guarantees the case_number primary key even when
	// cmd/migrate was never run against this file.
	if err := db.AutoMigrate(&models.Code{}, &models.Neighborhood{}, &models.Incident{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	gw := database.NewGateway(db)

	codeSvc := services.NewCodeService(gw)
	neighborhoodSvc := services.NewNeighborhoodService(gw)
	incidentSvc := services.NewIncidentService(gw)

	codeCtrl := controllers.NewCodeController(codeSvc)
	neighborhoodCtrl := controllers.NewNeighborhoodController(neighborhoodSvc)
	incidentCtrl := controllers.NewIncidentController(incidentSvc)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	root := e.Group("")
	codeCtrl.Register(root)
	neighborhoodCtrl.Register(root)
	incidentCtrl.Register(root)

	// Return (rather than exit) on server failure so the deferred
	// database close still runs.
	if err := e.Start(":8000"); err != nil {
		e.Logger.Error(err)
	}
}
