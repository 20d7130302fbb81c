package app

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/searchktools/mini-server/config"
	"github.com/searchktools/mini-server/core"
)

// App is the application instance: the configuration plus the engine
// serving it.
type App struct {
	cfg    *config.Config
	engine *core.Engine
}

// New creates an application instance and registers the route table.
func New(cfg *config.Config) *App {
	engine := core.NewEngine(core.Options{
		ReadBufferSize: cfg.ReadBufferSize,
		MaxConns:       cfg.MaxConns,
		ReadTimeout:    time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.WriteTimeout) * time.Second,
	})

	a := &App{
		cfg:    cfg,
		engine: engine,
	}
	a.registerRoutes()
	return a
}

// Engine returns the underlying engine
func (a *App) Engine() *core.Engine {
	return a.engine
}

// Run starts the application
func (a *App) Run() {
	go a.awaitSignal()

	addr := a.cfg.Addr()
	log.Printf("🚀 mini-server starting on %s [%s]", addr, a.cfg.Env)
	if a.cfg.Directory != "" {
		log.Printf("📁 serving /files from %s", a.cfg.Directory)
	}

	if err := a.engine.Run(addr); err != nil {
		log.Fatalf("Server startup failed: %v", err)
	}
}

func (a *App) awaitSignal() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Printf("Signal received: %v. Shutting down...", sig)

	os.Exit(0)
}
