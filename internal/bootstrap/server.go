package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/Domenick1991/flightsearch/api"
	"github.com/Domenick1991/flightsearch/config"
	flightsapi "github.com/Domenick1991/flightsearch/internal/api/flights_service_api"
	"github.com/Domenick1991/flightsearch/internal/api/gateway"
	"github.com/Domenick1991/flightsearch/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const swaggerDocument = "flights.swagger.json"

type Servers struct {
	grpcServer  *grpc.Server
	httpServer  *http.Server
	gatewayConn *grpc.ClientConn
}

type Option func(*options)

type options struct {
	publisher api.EventPublisher
	logger    zerolog.Logger
}

func WithPublisher(publisher api.EventPublisher) Option {
	return func(o *options) {
		o.publisher = publisher
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Run starts the gRPC server and the HTTP server (REST API, grpc-gateway and
// swagger UI) and blocks until ctx is canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase, opts ...Option) error {
	o := buildOptions(opts)
	s, err := newServers(cfg, flightSvc, o)
	if err != nil {
		return err
	}
	defer s.gatewayConn.Close()

	errCh := make(chan error, 2)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	go func() { errCh <- s.grpcServer.Serve(lis) }()

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	o.logger.Info().Str("grpc", cfg.GRPC.Address).Str("http", cfg.HTTP.Address).Msg("servers started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		o.logger.Info().Msg("shutting down servers")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newServers(cfg *config.Config, flightSvc flights.FlightUseCase, o options) (*Servers, error) {
	grpcSrv := grpc.NewServer(grpc.UnaryInterceptor(unaryLogger(o.logger)))
	flightsapi.RegisterFlightsServiceServer(grpcSrv, flightsapi.NewServer(flightSvc))

	conn, err := grpc.NewClient(dialTarget(cfg.GRPC.Address), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial gRPC for gateway: %w", err)
	}
	gatewayMux, err := gateway.NewMux(flightsapi.NewClient(conn))
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("register flights gateway: %w", err)
	}

	handler := http.NewServeMux()
	handler.Handle("/v1/", gatewayMux)
	handler.Handle("/", newRouter(flightSvc, o))

	if cfg.HTTP.SwaggerDir != "" {
		fs := http.FileServer(http.Dir(cfg.HTTP.SwaggerDir))
		handler.Handle("/swagger/", http.StripPrefix("/swagger/", fs))
		handler.Handle("/docs/", httpSwagger.Handler(httpSwagger.URL("/swagger/"+swaggerDocument)))
		o.logger.Debug().Str("document", filepath.Join(cfg.HTTP.SwaggerDir, swaggerDocument)).Msg("swagger UI enabled")
	}

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Servers{
		grpcServer:  grpcSrv,
		httpServer:  httpSrv,
		gatewayConn: conn,
	}, nil
}

func newRouter(flightSvc flights.FlightUseCase, o options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(o.logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlerOpts := []api.HandlerOption{api.WithLogger(o.logger)}
	if o.publisher != nil {
		handlerOpts = append(handlerOpts, api.WithPublisher(o.publisher))
	}
	api.NewFlightHandler(flightSvc, handlerOpts...).Register(router.Group("/api"))
	return router
}

// dialTarget turns a listen address such as ":9090" into something the gRPC
// client can dial.
func dialTarget(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}
