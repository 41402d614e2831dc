package main

import (
	"context"
	"log"

	"budaya-aceh-be/internal/bootstrap"
	"budaya-aceh-be/internal/config"
	"budaya-aceh-be/internal/server"
	"budaya-aceh-be/internal/tracer"
	"budaya-aceh-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database (knowledge store). A missing or unreachable
	// store disables the chat capability; it must not kill the process.
	var gormDB *gorm.DB
	if cfg.Database.Connection == "" {
		log.Println("⚠️ DB_CONNECTION_STRING not set — knowledge store unavailable, chat capability disabled")
	} else {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Printf("⚠️ Unable to connect to knowledge store: %v — chat capability disabled", err)
		} else {
			gormDB = db
		}
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
