package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paperbank_backend/internals/configs"
	database "paperbank_backend/internals/databases"
	scheduler "paperbank_backend/internals/features/users/auth/scheduler"
	"paperbank_backend/internals/features/users/auth/session"
	routes "paperbank_backend/internals/route"
	"paperbank_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	// 🔌 DB connect + pool + migrasi/seed
	database.ConnectDB()
	database.TunePool()
	if err := seeds.InitDB(database.DB); err != nil {
		log.Fatalf("❌ Gagal migrasi/seed database: %v", err)
	}

	// 📁 Folder PDF harus siap sebelum upload pertama
	if err := os.MkdirAll(configs.PDFDir, 0o755); err != nil {
		log.Fatalf("❌ Gagal menyiapkan folder PDF %s: %v", configs.PDFDir, err)
	}

	// 🔑 Session store admin + pembersih berkala
	sessionStore := session.NewStore(configs.JWTSecret, session.DefaultTTL)
	scheduler.StartSessionCleanupScheduler(sessionStore)

	app := routes.NewApp(database.DB, sessionStore)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup koneksi DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
