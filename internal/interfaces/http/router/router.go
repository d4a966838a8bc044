// Package router wires the HTTP routes and middleware.
package router

import (
	"github.com/evausesgit/les-histoires-de-rebecca/internal/config"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/interfaces/http/handler"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/interfaces/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups every request handler the router mounts.
type Handlers struct {
	Health     *handler.HealthHandler
	Books      *handler.BookHandler
	Chapters   *handler.ChapterHandler
	Contents   *handler.ContentHandler
	Styles     *handler.StyleHandler
	Generation *handler.GenerationHandler
	Session    *handler.SessionHandler
}

// Router owns the gin engine.
type Router struct {
	engine   *gin.Engine
	cfg      *config.Config
	handlers Handlers
}

func New(cfg *config.Config, handlers Handlers) *Router {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := &Router{
		engine:   gin.New(),
		cfg:      cfg,
		handlers: handlers,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// Engine returns the gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	r.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))

	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", r.handlers.Health.Health)
	r.engine.GET("/ready", r.handlers.Health.Ready)
	r.engine.GET("/live", r.handlers.Health.Live)

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	v1 := r.engine.Group("/v1")
	{
		styles := v1.Group("/styles")
		{
			styles.GET("", r.handlers.Styles.ListStyles)
			styles.POST("", r.handlers.Styles.CreateStyle)
			styles.GET("/:sid", r.handlers.Styles.GetStyle)
			styles.DELETE("/:sid", r.handlers.Styles.DeleteStyle)
		}

		books := v1.Group("/books")
		{
			books.GET("", r.handlers.Books.ListBooks)
			books.POST("", r.handlers.Books.CreateBook)
			books.GET("/:bid", r.handlers.Books.GetBook)
			books.DELETE("/:bid", r.handlers.Books.DeleteBook)
			books.GET("/:bid/chapters", r.handlers.Chapters.ListChapters)
			books.POST("/:bid/chapters", r.handlers.Chapters.CreateChapter)
		}

		chapters := v1.Group("/chapters")
		{
			chapters.GET("/:cid", r.handlers.Chapters.GetChapter)
			chapters.DELETE("/:cid", r.handlers.Chapters.DeleteChapter)
			chapters.GET("/:cid/contents", r.handlers.Contents.ListContents)
			chapters.POST("/:cid/generate", r.handlers.Generation.Generate)
		}

		contents := v1.Group("/contents")
		{
			contents.GET("/:coid", r.handlers.Contents.GetContent)
			contents.DELETE("/:coid", r.handlers.Contents.DeleteContent)
		}

		v1.POST("/generate/preview", r.handlers.Generation.Preview)

		session := v1.Group("/session")
		{
			session.GET("", r.handlers.Session.GetSession)
			session.DELETE("", r.handlers.Session.Reset)
			session.POST("/select-book", r.handlers.Session.SelectBook)
			session.POST("/write", r.handlers.Session.Write)
			session.POST("/read", r.handlers.Session.Read)
			session.POST("/back", r.handlers.Session.Back)
		}
	}
}
