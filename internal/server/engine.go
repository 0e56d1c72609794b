// Package server exposes pagination controls and the paged inventory listing over HTTP.
package server

import (
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/stockroom/pagenav/internal/cli/pagination"
)

const versionRegex = "^(/v[0-9]{1,2}|)$"

// EngineConfig wires the engine's collaborators.
type EngineConfig struct {
	Lister     ItemLister
	APIVersion string
	PageSize   int
	Delta      int
	Logger     zerolog.Logger
}

// NewEngine builds the gin engine with every route registered under cfg.APIVersion.
func NewEngine(cfg EngineConfig) (*gin.Engine, error) {
	if match, _ := regexp.MatchString(versionRegex, cfg.APIVersion); !match {
		return nil, fmt.Errorf("api version should have the format %s, got %q", versionRegex, cfg.APIVersion)
	}
	if cfg.Lister == nil {
		cfg.Lister = StaticLister(nil)
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = pagination.DefaultPageSize
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("sortexpr", SortExprValidator); err != nil {
			return nil, err
		}
		if err := v.RegisterValidation("itemstatus", ItemStatusValidator); err != nil {
			return nil, err
		}
	}

	pc := PaginationController{Delta: cfg.Delta}
	ic := ItemController{
		Lister:   cfg.Lister,
		Sorter:   pagination.NewItemSorter(),
		PageSize: cfg.PageSize,
		Delta:    cfg.Delta,
		Logger:   cfg.Logger,
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(cfg.Logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	g := r.Group(cfg.APIVersion)
	{
		g.GET("/pagination", pc.GetRange)
		g.POST("/pagination/change", pc.ChangePage)
		g.GET("/items", ic.GetItems)
	}

	return r, nil
}

// requestLogger logs one line per request at debug level, or warn for 5xx responses.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := logger.Debug()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = logger.Warn()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
