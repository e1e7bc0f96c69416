package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"event_backend/internal/config"
	custommw "event_backend/internal/middleware"
	httprouters "event_backend/internal/transport/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// NewValidator reports field errors under json names, so responses
// match the payload the client actually sent.
func NewValidator() *CustomValidator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &CustomValidator{validator: validate}
}

type Server struct {
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	host    string
	port    string
}

func New(log *slog.Logger, cfg *config.Config, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Validator = NewValidator()

	e.Use(custommw.RequestID)
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("25M"))

	origins := cfg.CORS.AllowedOrigins()
	if len(origins) == 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
			AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		}))
	} else {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     origins,
			AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
			AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
			AllowCredentials: true,
		}))
	}

	e.Use(custommw.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("method", v.Method),
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	return &Server{
		log:     log,
		e:       e,
		routers: routers,
		host:    cfg.HTTP.Host,
		port:    cfg.HTTP.Port,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf("%s:%s", s.host, s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

// BuildRouters mounts all resource groups. When the store is not
// configured the routers are nil and only the root and metrics routes
// are served, so health checks still answer while data routes 404.
func (s *Server) BuildRouters() {
	s.e.GET("/", func(c echo.Context) error {
		if s.routers == nil {
			return c.String(http.StatusInternalServerError, "store credentials missing")
		}
		return c.String(http.StatusOK, "Hello World from Event Backend!")
	})

	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if s.routers == nil {
		return
	}

	events := s.e.Group("/events")
	{
		events.GET("", s.routers.ListEvents)
		events.GET("/:id", s.routers.GetEvent)
		events.POST("", s.routers.CreateEvent)
		events.PUT("/:id", s.routers.UpdateEvent)
		events.DELETE("/:id", s.routers.DeleteEvent)
	}

	galleries := s.e.Group("/galleries")
	{
		galleries.GET("", s.routers.ListGalleries)
		galleries.GET("/:id", s.routers.GetGallery)
		galleries.POST("", s.routers.CreateGallery)
		galleries.PUT("/:id", s.routers.UpdateGallery)
		galleries.DELETE("/:id", s.routers.DeleteGallery)
	}

	albums := s.e.Group("/albums")
	{
		albums.GET("", s.routers.ListAlbums)
		albums.GET("/:id", s.routers.GetAlbum)
		albums.POST("", s.routers.CreateAlbum)
		albums.POST("/bulk", s.routers.BulkCreateAlbums)
		albums.PUT("/:id", s.routers.UpdateAlbum)
		albums.DELETE("/:id", s.routers.DeleteAlbum)
	}

	tickets := s.e.Group("/tickets")
	{
		tickets.GET("", s.routers.ListTickets)
		tickets.GET("/:id", s.routers.GetTicket)
		tickets.POST("", s.routers.CreateTicket)
		tickets.PUT("/:id", s.routers.UpdateTicket)
		tickets.DELETE("/:id", s.routers.DeleteTicket)
	}

	connect := s.e.Group("/connect")
	{
		connect.GET("", s.routers.ListConnectRecords)
		connect.GET("/:id", s.routers.GetConnectRecord)
		connect.POST("", s.routers.CreateConnectRecord)
		connect.DELETE("/:id", s.routers.DeleteConnectRecord)
	}

	reports := s.e.Group("/reports")
	{
		reports.GET("/summary", s.routers.ReportSummary)
	}
}
