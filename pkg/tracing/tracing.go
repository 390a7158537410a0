package tracing

import (
	"fmt"
	"net/http"
	"strings"

	"contrib.go.opencensus.io/exporter/aws"
	"contrib.go.opencensus.io/exporter/jaeger"
	"contrib.go.opencensus.io/exporter/prometheus"
	"contrib.go.opencensus.io/exporter/stackdriver"
	"contrib.go.opencensus.io/exporter/zipkin"
	"contrib.go.opencensus.io/integrations/ocsql"
	datadog "github.com/DataDog/opencensus-go-exporter-datadog"
	zipkinhttp "github.com/openzipkin/zipkin-go/reporter/http"
	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/trace"

	"github.com/coachdesk/coachdesk/config"
	"github.com/coachdesk/coachdesk/pkg/logger"
)

// InitTracing initializes OpenCensus tracing with the given configuration
// codecov:ignore:start
func InitTracing(tracingConfig *config.TracingConfig, log logger.Logger) error {
	if !tracingConfig.Enabled {
		return nil
	}

	trace.ApplyConfig(trace.Config{
		DefaultSampler: trace.ProbabilitySampler(tracingConfig.SamplingProbability),
	})

	if tracingConfig.TraceExporter != "none" && tracingConfig.TraceExporter != "" {
		if err := initTraceExporter(tracingConfig, log); err != nil {
			return err
		}
	}

	if tracingConfig.MetricsExporter != "none" && tracingConfig.MetricsExporter != "" {
		if err := initMetricsExporters(tracingConfig, log); err != nil {
			return err
		}
	}

	if err := RegisterHTTPServerViews(); err != nil {
		return fmt.Errorf("failed to register HTTP server views: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"trace_exporter":   tracingConfig.TraceExporter,
		"metrics_exporter": tracingConfig.MetricsExporter,
	}).Info("OpenCensus initialized")
	return nil
}

func initTraceExporter(cfg *config.TracingConfig, log logger.Logger) error {
	switch cfg.TraceExporter {
	case "jaeger":
		return initJaegerExporter(cfg, log)
	case "zipkin":
		return initZipkinExporter(cfg, log)
	case "stackdriver":
		return initStackdriverTraceExporter(cfg, log)
	case "datadog":
		return initDatadogTraceExporter(cfg, log)
	case "xray":
		return initXRayExporter(cfg, log)
	case "none", "":
		return nil
	default:
		return fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}
}

// initMetricsExporters accepts a comma-separated list of exporter names
func initMetricsExporters(cfg *config.TracingConfig, log logger.Logger) error {
	if cfg.MetricsExporter == "none" || cfg.MetricsExporter == "" {
		return nil
	}

	for _, exporter := range splitExporters(cfg.MetricsExporter) {
		var err error
		switch exporter {
		case "prometheus":
			err = initPrometheusExporter(cfg, log)
		case "stackdriver":
			err = initStackdriverMetricsExporter(cfg, log)
		case "datadog":
			err = initDatadogMetricsExporter(cfg, log)
		default:
			return fmt.Errorf("unsupported metrics exporter: %s", exporter)
		}

		if err != nil {
			return fmt.Errorf("failed to initialize %s metrics exporter: %w", exporter, err)
		}
		log.WithField("exporter", exporter).Info("Initialized metrics exporter")
	}

	if err := registerCustomViews(); err != nil {
		return fmt.Errorf("failed to register custom views: %w", err)
	}

	return nil
}

func splitExporters(list string) []string {
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// registerCustomViews registers the database views recorded by ocsql
func registerCustomViews() error {
	if err := view.Register(ocsql.DefaultViews...); err != nil {
		return fmt.Errorf("failed to register database views: %w", err)
	}
	return nil
}

func initJaegerExporter(cfg *config.TracingConfig, log logger.Logger) error {
	if cfg.JaegerEndpoint == "" {
		return fmt.Errorf("Jaeger endpoint is required for Jaeger exporter")
	}

	je, err := jaeger.NewExporter(jaeger.Options{
		CollectorEndpoint: cfg.JaegerEndpoint,
		ServiceName:       cfg.ServiceName,
		Process: jaeger.Process{
			ServiceName: cfg.ServiceName,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create Jaeger exporter: %w", err)
	}

	trace.RegisterExporter(je)
	log.WithField("endpoint", cfg.JaegerEndpoint).Info("Jaeger exporter initialized")
	return nil
}

func initZipkinExporter(cfg *config.TracingConfig, log logger.Logger) error {
	if cfg.ZipkinEndpoint == "" {
		return fmt.Errorf("Zipkin endpoint is required for Zipkin exporter")
	}

	reporter := zipkinhttp.NewReporter(cfg.ZipkinEndpoint)
	ze := zipkin.NewExporter(reporter, nil)
	trace.RegisterExporter(ze)
	log.WithField("endpoint", cfg.ZipkinEndpoint).Info("Zipkin exporter initialized")
	return nil
}

func initStackdriverTraceExporter(cfg *config.TracingConfig, log logger.Logger) error {
	if cfg.StackdriverProjectID == "" {
		return fmt.Errorf("Stackdriver project ID is required for Stackdriver exporter")
	}

	se, err := stackdriver.NewExporter(stackdriver.Options{
		ProjectID: cfg.StackdriverProjectID,
	})
	if err != nil {
		return fmt.Errorf("failed to create Stackdriver exporter: %w", err)
	}

	trace.RegisterExporter(se)
	log.WithField("project_id", cfg.StackdriverProjectID).Info("Stackdriver exporter initialized")
	return nil
}

func initDatadogTraceExporter(cfg *config.TracingConfig, log logger.Logger) error {
	if cfg.DatadogAgentAddress == "" {
		return fmt.Errorf("Datadog agent address is required for Datadog exporter")
	}

	exporter, err := datadog.NewExporter(datadog.Options{
		Service:   cfg.ServiceName,
		TraceAddr: cfg.DatadogAgentAddress,
		StatsAddr: cfg.DatadogAgentAddress,
		OnError: func(err error) {
			log.WithField("error", err.Error()).Error("Datadog exporter error")
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create Datadog exporter: %w", err)
	}

	trace.RegisterExporter(exporter)
	log.WithField("agent", cfg.DatadogAgentAddress).Info("Datadog exporter initialized")
	return nil
}

func initXRayExporter(cfg *config.TracingConfig, log logger.Logger) error {
	if cfg.XRayRegion == "" {
		return fmt.Errorf("AWS region is required for X-Ray exporter")
	}

	exporter, err := aws.NewExporter(
		aws.WithRegion(cfg.XRayRegion),
		aws.WithVersion("latest"),
	)
	if err != nil {
		return fmt.Errorf("failed to create AWS X-Ray exporter: %w", err)
	}

	trace.RegisterExporter(exporter)
	log.WithField("region", cfg.XRayRegion).Info("AWS X-Ray exporter initialized")
	return nil
}

func initPrometheusExporter(cfg *config.TracingConfig, log logger.Logger) error {
	pe, err := prometheus.NewExporter(prometheus.Options{
		Namespace: strings.ReplaceAll(cfg.ServiceName, "-", "_"),
		OnError: func(err error) {
			log.WithField("error", err.Error()).Error("Prometheus exporter error")
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}

	view.RegisterExporter(pe)

	if cfg.PrometheusPort <= 0 {
		log.Info("Prometheus metrics server not started (port not configured)")
		return nil
	}

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", pe)

		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.PrometheusPort),
			Handler: mux,
		}

		log.WithField("port", cfg.PrometheusPort).Info("Starting Prometheus metrics server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithField("error", err.Error()).Error("Prometheus metrics server stopped")
		}
	}()

	return nil
}

func initStackdriverMetricsExporter(cfg *config.TracingConfig, log logger.Logger) error {
	if cfg.StackdriverProjectID == "" {
		return fmt.Errorf("Stackdriver project ID is required for Stackdriver metrics exporter")
	}

	se, err := stackdriver.NewExporter(stackdriver.Options{
		ProjectID:    cfg.StackdriverProjectID,
		MetricPrefix: cfg.ServiceName,
		OnError: func(err error) {
			log.WithField("error", err.Error()).Error("Stackdriver metrics exporter error")
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create Stackdriver metrics exporter: %w", err)
	}

	view.RegisterExporter(se)
	log.WithField("project_id", cfg.StackdriverProjectID).Info("Stackdriver metrics exporter initialized")
	return nil
}

func initDatadogMetricsExporter(cfg *config.TracingConfig, log logger.Logger) error {
	if cfg.DatadogAgentAddress == "" {
		return fmt.Errorf("Datadog agent address is required for Datadog metrics exporter")
	}

	exporter, err := datadog.NewExporter(datadog.Options{
		Service:   cfg.ServiceName,
		TraceAddr: cfg.DatadogAgentAddress,
		StatsAddr: cfg.DatadogAgentAddress,
		OnError: func(err error) {
			log.WithField("error", err.Error()).Error("Datadog metrics exporter error")
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create Datadog metrics exporter: %w", err)
	}

	view.RegisterExporter(exporter)
	log.WithField("agent", cfg.DatadogAgentAddress).Info("Datadog metrics exporter initialized")
	return nil
}

// RegisterHTTPServerViews registers views for HTTP server metrics
func RegisterHTTPServerViews() error {
	return view.Register(
		ochttp.ServerRequestCountView,
		ochttp.ServerRequestBytesView,
		ochttp.ServerResponseBytesView,
		ochttp.ServerLatencyView,
		ochttp.ServerRequestCountByMethod,
		ochttp.ServerResponseCountByStatusCode,
	)
}

// codecov:ignore:end
