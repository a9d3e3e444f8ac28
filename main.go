package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"

	"github.com/haikal-dev-fs/my-portofolio/handler"
	"github.com/haikal-dev-fs/my-portofolio/store"
)

type config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	DatabasePath  string `env:"DATABASE_PATH" envDefault:"./portfolio.db"`
	DataDir       string `env:"DATA_DIR" envDefault:"./data"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort string `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`
	ToEmail  string `env:"TO_EMAIL"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal("Failed to parse config:", err)
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
		log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fallback := store.NewFallback(db)
	fallback.Start(ctx, 30*time.Second)

	var notifier handler.Notifier
	if cfg.SMTPUser != "" && cfg.SMTPPass != "" && cfg.ToEmail != "" {
		notifier = handler.NewSMTPNotifier(handler.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			To:       cfg.ToEmail,
		})
	}

	uploadDir := filepath.Join(cfg.DataDir, "uploads")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload dir:", err)
	}

	r := gin.Default()
	r.Static("/uploads", uploadDir)

	h := handler.New(fallback, handler.Options{
		AdminPassword: cfg.AdminPassword,
		UploadDir:     uploadDir,
		Notifier:      notifier,
	})
	h.Register(r)

	log.Printf("Portfolio API listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server error:", err)
	}
}
