package main

import (
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"edu_crm/internal/database"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"
)

const shutdownTimeout = 20 * time.Second

func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// resolvePath resolves a relative path against the directory that holds config/env.
func resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	currentDir, err := os.Getwd()
	if err != nil {
		return path
	}
	for {
		if _, err := os.Stat(filepath.Join(currentDir, "config", "env")); err == nil {
			return filepath.Join(currentDir, path)
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return path
		}
		currentDir = parentDir
	}
}

// serve listens on the configured address, over TLS when enabled. It returns when the app shuts down.
func serve(app *fiber.App) error {
	cfg := global.MongoDB_ServerConfig
	address := cfg.Address
	if !strings.Contains(address, ":") {
		address = ":" + address
	}
	log := logger.GetAppLogger()
	listenConfig := fiber.ListenConfig{DisableStartupMessage: cfg.IsProduction()}

	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		certPath := resolvePath(cfg.TLSCertFile)
		keyPath := resolvePath(cfg.TLSKeyFile)
		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			return fmt.Errorf("loading TLS certificate: %w", err)
		}
		ln, err := net.Listen("tcp", address)
		if err != nil {
			return fmt.Errorf("creating listener: %w", err)
		}
		tlsListener := tls.NewListener(ln, &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		})
		log.WithFields(map[string]interface{}{"address": address, "cert": certPath}).Info("Starting server with HTTPS/TLS")
		return app.Listener(tlsListener, listenConfig)
	}

	log.WithFields(map[string]interface{}{"address": address, "protocol": "HTTP"}).Info("Starting server with HTTP")
	return app.Listen(address, listenConfig)
}

func main() {
	initLogger()
	defer logger.Close()

	InitGlobal()
	InitRegistry()

	services := InitServices()
	InitDefaultData(services.Team)
	scheduler := InitCron(services)

	cfg := global.MongoDB_ServerConfig
	app, err := InitFiberApp(cfg, global.MongoDB_Session, services.AuthMiddleware(), services.Routes()...)
	if err != nil {
		logger.GetAppLogger().Fatalf("Failed to register routes: %v", err)
	}

	log := logger.GetAppLogger()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-quit
		log.WithField("signal", sig.String()).Info("Shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.WithError(err).Error("Server shutdown failed")
		}
	}()

	if err := serve(app); err != nil {
		log.WithError(err).Error("Server stopped with error")
	}

	if scheduler != nil {
		scheduler.Stop()
	}
	services.Wait()
	if err := database.CloseInstance(global.MongoDB_Session); err != nil {
		log.WithError(err).Warn("MongoDB disconnect failed")
	}
	log.Info("Server stopped")
}
