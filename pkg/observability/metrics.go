package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

var (
	// gRPC client call metrics
	grpcCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "connector_client_grpc_calls_total",
			Help: "Total number of gRPC calls issued to the connector service",
		},
		[]string{"method", "status"},
	)

	grpcCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "connector_client_grpc_call_duration_seconds",
			Help:    "Duration of gRPC calls to the connector service in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	grpcCallsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "connector_client_grpc_calls_in_flight",
			Help: "Number of gRPC calls currently awaiting a response",
		},
	)
)

// UnaryClientInterceptor returns a gRPC unary client interceptor that records
// Prometheus metrics for every outbound call.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		start := time.Now()
		grpcCallsInFlight.Inc()
		defer grpcCallsInFlight.Dec()

		err := invoker(ctx, method, req, reply, cc, opts...)

		duration := time.Since(start).Seconds()
		grpcCallDuration.WithLabelValues(method).Observe(duration)

		statusCode := "OK"
		if err != nil {
			st, _ := status.FromError(err)
			statusCode = st.Code().String()
		}
		grpcCallsTotal.WithLabelValues(method, statusCode).Inc()

		return err
	}
}
