package app

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/searchktools/mini-server/core/http"
)

// registerRoutes installs the route table. Order matters: routes are
// matched in registration order, first match wins.
func (a *App) registerRoutes() {
	e := a.engine
	dir := a.cfg.Directory

	e.GET("/", func(ctx *http.Context) {
		ctx.Status(http.StatusOK)
	})

	e.GET("/echo/*message", func(ctx *http.Context) {
		ctx.String(http.StatusOK, ctx.Param("message"))
	})

	e.GET("/user-agent", func(ctx *http.Context) {
		agent, ok := ctx.Header(http.HeaderUserAgent)
		if !ok {
			ctx.Status(http.StatusBadRequest)
			return
		}
		ctx.String(http.StatusOK, agent)
	})

	e.GET("/files/*filename", func(ctx *http.Context) {
		if dir == "" {
			ctx.Status(http.StatusInternalServerError)
			return
		}
		data, err := os.ReadFile(filepath.Join(dir, ctx.Param("filename")))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				ctx.Status(http.StatusNotFound)
				return
			}
			log.Printf("read file %s: %v", ctx.Param("filename"), err)
			ctx.Status(http.StatusInternalServerError)
			return
		}
		ctx.Data(http.StatusOK, http.MIMEOctetStream, data)
	})

	e.POST("/files/*filename", func(ctx *http.Context) {
		if dir == "" {
			ctx.Status(http.StatusInternalServerError)
			return
		}
		// Write failures are logged and still answered with 201.
		if err := os.WriteFile(filepath.Join(dir, ctx.Param("filename")), ctx.Body(), 0o644); err != nil {
			log.Printf("write file %s: %v", ctx.Param("filename"), err)
		}
		ctx.Status(http.StatusCreated)
	})
}
