// Package app собирает процесс order-service: конфигурацию, каталог, ядро жизненного
// цикла с подписчиками, gRPC API и служебный HTTP.
package app

import (
	"context"
	"errors"
	"net"
	"time"

	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	orderflowv1 "github.com/vladislavdragonenkov/orderflow/api/orderflow/v1"
	healthcheck "github.com/vladislavdragonenkov/orderflow/internal/health"
	"github.com/vladislavdragonenkov/orderflow/internal/metrics"
	grpcsvc "github.com/vladislavdragonenkov/orderflow/internal/service/grpc"
	"github.com/vladislavdragonenkov/orderflow/internal/version"
)

// Run поднимает сервис и блокируется до отмены ctx или падения gRPC-сервера.
func Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	base, err := NewLogger(cfg)
	if err != nil {
		return err
	}
	logger := base.WithField("component", "app")
	logger.Info(version.String())

	rt, err := NewRuntime(ctx, cfg, logger, metrics.NewOrderMetrics())
	if err != nil {
		return err
	}
	defer rt.Close()

	grpcServer, grpcHealth := newGRPCServer(rt, logger.WithField("layer", "grpc"))

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	rt.deps.registerHealthChecks(healthHandler)

	adminSrv := startAdminServer(ctx, cfg.MetricsAddr, logger, newAdminRouter(rt.Core, healthHandler, logger.WithField("layer", "http")))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		shutdownHTTP(adminSrv, logger)
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("gRPC сервер слушает %s", lis.Addr())
		errCh <- grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем gRPC сервер")
		grpcHealth.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		stopGRPC(grpcServer, logger)
		shutdownHTTP(adminSrv, logger)
		return ctx.Err()
	case err := <-errCh:
		shutdownHTTP(adminSrv, logger)
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	}
}

// newGRPCServer регистрирует OrderService, grpc health, reflection и
// prometheus-интерцептор. Повторная регистрация метрик (тесты поднимают
// сервер несколько раз) переиспользует уже зарегистрированный коллектор.
func newGRPCServer(rt *Runtime, logger *log.Entry) (*grpc.Server, *health.Server) {
	grpcMetrics := promgrpc.NewServerMetrics()
	if err := prometheus.Register(grpcMetrics); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			logger.WithError(err).Warn("failed to register grpc metrics")
		} else if existing, ok := are.ExistingCollector.(*promgrpc.ServerMetrics); ok {
			grpcMetrics = existing
		}
	}

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(grpcMetrics.UnaryServerInterceptor()))
	orderflowv1.RegisterOrderServiceServer(server, grpcsvc.NewOrderService(rt.Core, logger))
	grpcMetrics.InitializeMetrics(server)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(server)
	return server, healthServer
}

// stopGRPC ждёт завершения активных вызовов не дольше shutdownTimeout.
func stopGRPC(server *grpc.Server, logger *log.Entry) {
	stopped := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(shutdownTimeout):
		logger.Warn("graceful stop превысил таймаут, принудительно останавливаем")
		server.Stop()
	}
}
