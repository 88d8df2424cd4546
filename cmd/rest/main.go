package main

import (
	"context"
	"log"

	"educonnect-be/internal/bootstrap"
	"educonnect-be/internal/config"
	"educonnect-be/internal/server"
	"educonnect-be/internal/tracer"
	"educonnect-be/pkg/database"
)

func main() {
	// 0. Initialize tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load configuration
	cfg := config.Load()

	// 2. Initialize database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap dependencies
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start background activity consumer
	go func() {
		log.Println("Background: starting activity consumer...")
		if err := container.ActivityService.Run(context.Background()); err != nil {
			log.Printf("Background activity consumer error: %v", err)
		}
	}()

	// 5. Run server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
