package bootstrap

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/stadiumbooking/api"
	"github.com/Domenick1991/stadiumbooking/config"
	"github.com/Domenick1991/stadiumbooking/internal/auth"
	"github.com/Domenick1991/stadiumbooking/internal/service/booking"
	"github.com/Domenick1991/stadiumbooking/internal/service/catalog"
	"github.com/Domenick1991/stadiumbooking/internal/service/stats"
	"github.com/gin-gonic/gin"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/encoding/protojson"
)

const swaggerDoc = "/swagger/stadiums.swagger.json"

// Services is everything the HTTP API serves.
type Services struct {
	Catalog  catalog.CatalogUseCase
	Bookings booking.BookingUseCase
	Stats    stats.StatsUseCase
	Auth     auth.Authenticator
}

type Servers struct {
	grpcServer *grpc.Server
	health     *health.Server
	healthConn *grpc.ClientConn
	httpServer *http.Server
}

// Run starts the gRPC health server and the HTTP API and blocks until the
// context is canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, svc Services) error {
	s, err := newServers(cfg, svc)
	if err != nil {
		return err
	}
	defer s.healthConn.Close()

	errCh := make(chan error, 2)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	go func() { errCh <- s.grpcServer.Serve(lis) }()

	go func() { errCh <- s.httpServer.ListenAndServe() }()

	logrus.WithFields(logrus.Fields{
		"http": cfg.HTTP.Address,
		"grpc": cfg.GRPC.Address,
	}).Info("servers started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.health.Shutdown()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServers(cfg *config.Config, svc Services) (*Servers, error) {
	grpcSrv := grpc.NewServer()
	healthSrv := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcSrv, healthSrv)
	healthSrv.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	conn, err := grpc.NewClient(cfg.GRPC.Address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial gRPC health: %w", err)
	}
	gateway, err := newHealthGateway(grpc_health_v1.NewHealthClient(conn))
	if err != nil {
		conn.Close()
		return nil, err
	}

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(svc, gateway, cfg.HTTP.SwaggerDir),
	}

	return &Servers{
		grpcServer: grpcSrv,
		health:     healthSrv,
		healthConn: conn,
		httpServer: httpSrv,
	}, nil
}

// newHealthGateway exposes the gRPC health check as GET /healthz.
func newHealthGateway(client grpc_health_v1.HealthClient) (*runtime.ServeMux, error) {
	mux := runtime.NewServeMux()
	err := mux.HandlePath(http.MethodGet, "/healthz", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		resp, err := client.Check(r.Context(), &grpc_health_v1.HealthCheckRequest{})
		status := http.StatusOK
		if err != nil {
			resp = &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_UNKNOWN}
			status = http.StatusServiceUnavailable
		} else if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
			status = http.StatusServiceUnavailable
		}

		body, err := protojson.Marshal(resp)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(body)
	})
	if err != nil {
		return nil, fmt.Errorf("register health gateway: %w", err)
	}
	return mux, nil
}

// NewRouter mounts the REST API under /api/v1 next to the operational
// endpoints. Swagger is only served when swaggerDir is set.
func NewRouter(svc Services, gateway http.Handler, swaggerDir string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogger(), api.Authenticate())

	v1 := router.Group("/api/v1")
	api.NewAuthHandler(svc.Auth).Register(v1.Group("/auth"))
	api.NewVenueHandler(svc.Catalog, svc.Bookings).Register(v1.Group("/venues"))
	api.NewBookingHandler(svc.Bookings).Register(v1.Group("/bookings"))
	api.NewOwnerHandler(svc.Catalog, svc.Stats).Register(v1.Group("/owner", api.RequireRole(auth.RoleOwner)))
	api.NewAdminHandler(svc.Stats).Register(v1.Group("/admin", api.RequireRole(auth.RoleAdmin)))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if gateway != nil {
		router.GET("/healthz", gin.WrapH(gateway))
	}

	if swaggerDir != "" {
		router.Static("/swagger", swaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL(swaggerDoc))))
	}
	return router
}
