package health

import (
	"errors"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is reported next to the overall ("") status.
const ServiceName = "mini_web.HTTP"

// Server exposes grpc.health.v1.Health for the HTTP listener. It reports
// NOT_SERVING until SetServing(true) is called.
type Server struct {
	addr   string
	grpc   *grpc.Server
	health *health.Server
	logger *zap.SugaredLogger
}

func New(addr string, logger *zap.Logger) *Server {
	hs := health.NewServer()
	hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	gs := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(gs, hs)

	return &Server{
		addr:   addr,
		grpc:   gs,
		health: hs,
		logger: logger.Sugar(),
	}
}

func (s *Server) Listen() (net.Listener, error) {
	return net.Listen("tcp", s.addr)
}

// Serve blocks until Close is called or the listener fails. Serving after
// Close returns nil.
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Infof("Health service is starting on %s", listener.Addr())
	if err := s.grpc.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func (s *Server) SetServing(serving bool) {
	status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if serving {
		status = grpc_health_v1.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Close marks every service NOT_SERVING and stops the gRPC server.
func (s *Server) Close() {
	s.health.Shutdown()
	s.grpc.Stop()
}
