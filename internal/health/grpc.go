package health

import (
	"fmt"
	"net"

	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name reported through the gRPC health service.
const ServiceName = "wallet-explorer"

// GRPCServer exposes the monitor's status through grpc.health.v1.Health.
type GRPCServer struct {
	port   int
	server *grpc.Server
	health *grpchealth.Server
}

// NewGRPCServer creates a gRPC server with only the health service registered.
func NewGRPCServer(port int) *GRPCServer {
	server := grpc.NewServer()
	h := grpchealth.NewServer()
	healthpb.RegisterHealthServer(server, h)

	g := &GRPCServer{port: port, server: server, health: h}
	g.SetStatus(StatusCritical)
	return g
}

// SetStatus maps a system status onto the gRPC serving status. Degraded
// still serves.
func (g *GRPCServer) SetStatus(status SystemStatus) {
	serving := healthpb.HealthCheckResponse_SERVING
	if status == StatusCritical {
		serving = healthpb.HealthCheckResponse_NOT_SERVING
	}
	g.health.SetServingStatus("", serving)
	g.health.SetServingStatus(ServiceName, serving)
}

// Start listens and serves until Stop is called.
func (g *GRPCServer) Start() error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", g.port))
	if err != nil {
		return fmt.Errorf("failed to listen on grpc port %d: %w", g.port, err)
	}
	return g.server.Serve(lis)
}

// Stop marks every service NOT_SERVING and drains in-flight calls.
func (g *GRPCServer) Stop() {
	g.health.Shutdown()
	g.server.GracefulStop()
}
