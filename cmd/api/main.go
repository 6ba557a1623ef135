package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"nexshop/internal/client"
	"nexshop/internal/config"
	"nexshop/internal/server"
	"nexshop/internal/service"
	"nexshop/internal/store"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	manager := store.NewManager(cfg.Session.TTL)
	manager.StartSweeper(cfg.Session.SweepInterval)

	discordClient := client.NewDiscordClient(&cfg.Discord, cfg.Payment.PacingDelay)
	paymentService := service.NewPaymentService("NexShop", cfg.Payment.PacingDelay)
	checkoutService := service.NewCheckoutService(paymentService)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(cfg, manager, discordClient, checkoutService)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
	manager.Stop()
}
