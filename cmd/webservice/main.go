package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	openapimiddleware "github.com/go-openapi/runtime/middleware"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/marketbase/product-catalog-service/config"
	"github.com/marketbase/product-catalog-service/internal/controller"
	"github.com/marketbase/product-catalog-service/internal/infrastructure/database/mongodb"
	kafkainfra "github.com/marketbase/product-catalog-service/internal/infrastructure/message-queue/kafka"
	"github.com/marketbase/product-catalog-service/internal/infrastructure/tracing"
	"github.com/marketbase/product-catalog-service/internal/repository"
	"github.com/marketbase/product-catalog-service/internal/service"
	"github.com/marketbase/product-catalog-service/internal/validation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(config.MongoDBConfig.URI, config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	defer db.Client().Disconnect(context.Background())

	var kafkaProducer *kafka.Conn
	if config.KafkaConfig.BrokerAddress != "" {
		kafkaProducer, err = kafkainfra.CreateKafkaProducer(config)
		if err != nil {
			log.Error().Err(err).Msg("Failed to connect to Kafka, product events disabled")
		}
	}

	e := echo.New()

	traceProvider, err := tracing.InitTracing(config.TracingConfig.CollectorHost)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if traceProvider == nil {
			return
		}
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	if traceProvider != nil {
		tracer := traceProvider.Tracer("product-catalog-service")

		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
				defer span.End()

				req := c.Request()
				c.SetRequest(req.WithContext(ctx))

				return next(c)
			}
		})
	}

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogMethod:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("URI", v.URI).
				Int("status", v.Status).
				Int64("latency", v.Latency.Microseconds()).
				Str("remote IP", v.RemoteIP).
				Msg("Request")

			return nil
		},
	}))

	g := e.Group("")

	mongoDBRepo := repository.CreateNewMongoDBRepository(db)
	svc := service.CreateProductService(mongoDBRepo, *config, kafkaProducer)
	validator := validation.NewValidation(config.EnableDocs)
	controller.CreateProductController(g, svc, validator)

	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	if config.EnableDocs {
		opts := openapimiddleware.RedocOpts{SpecURL: "/swagger.yaml", Title: "Product Catalog API"}
		e.GET("/docs", echo.WrapHandler(openapimiddleware.Redoc(opts, nil)))
		e.File("/swagger.yaml", "api/swagger.yaml")
	}

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", config.ServicePort)))
}
