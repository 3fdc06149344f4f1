package tracing

import (
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("main-backend")

// EndSpanWithErrCheck ends the span, recording the error on it if not nil.
// Meant to be used from a deferred func together with a named error return.
func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// HoneycombSetup configures the OpenTelemetry SDK via the honeycomb distro
// and attaches the redis tracing hook. Returns the otel shutdown func.
// When tracing is disabled, a no-op shutdown is returned.
func HoneycombSetup(
	tracingEnabled bool,
	serviceName string,
	redisClient *redis.Client,
) (func(), error) {
	if !tracingEnabled {
		log.Debugln("honeycomb tracing disabled, skipping otel setup")
		return func() {}, nil
	}

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(serviceName),
	)
	if err != nil {
		return nil, err
	}

	redisClient.AddHook(redisotel.NewTracingHook())

	log.Debugln("otel set up via honeycomb distro")
	return otelShutdown, nil
}
