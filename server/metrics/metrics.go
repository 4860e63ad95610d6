package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	MetricsNamespace       = "msteams_mcp"
	MetricsSubsystemApp    = "app"
	MetricsSubsystemHTTP   = "http"
	MetricsSubsystemAPI    = "api"
	MetricsSubsystemTools  = "tools"
	MetricsSubsystemGraph  = "graph"
	MetricsSubsystemClient = "client"

	MetricsTenantLabel = "tenantId"
)

type InstanceInfo struct {
	TenantID string
	Version  string
}

// Metrics used to instrumentate metrics in prometheus.
type Metrics struct {
	registry *prometheus.Registry

	apiTime *prometheus.HistogramVec

	httpRequestsTotal prometheus.Counter
	httpErrorsTotal   prometheus.Counter

	toolCallsTotal *prometheus.CounterVec
	toolTime       *prometheus.HistogramVec

	graphRequestTime *prometheus.HistogramVec
	clientTime       *prometheus.HistogramVec

	goroutineFailuresTotal *prometheus.CounterVec

	info *prometheus.GaugeVec
}

// NewMetrics Factory method to create a new metrics collector.
func NewMetrics(info InstanceInfo) *Metrics {
	m := &Metrics{}

	m.registry = prometheus.NewRegistry()
	options := collectors.ProcessCollectorOpts{
		Namespace: MetricsNamespace,
	}
	m.registry.MustRegister(collectors.NewProcessCollector(options))
	m.registry.MustRegister(collectors.NewGoCollector())

	additionalLabels := map[string]string{}
	if info.TenantID != "" {
		additionalLabels[MetricsTenantLabel] = info.TenantID
	}

	m.apiTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   MetricsNamespace,
			Subsystem:   MetricsSubsystemAPI,
			Name:        "time",
			Help:        "Time to execute the api handler",
			ConstLabels: additionalLabels,
		},
		[]string{"handler", "method", "status_code"},
	)
	m.registry.MustRegister(m.apiTime)

	m.httpRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   MetricsNamespace,
		Subsystem:   MetricsSubsystemHTTP,
		Name:        "requests_total",
		Help:        "The total number of http API requests.",
		ConstLabels: additionalLabels,
	})
	m.registry.MustRegister(m.httpRequestsTotal)

	m.httpErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   MetricsNamespace,
		Subsystem:   MetricsSubsystemHTTP,
		Name:        "errors_total",
		Help:        "The total number of http API errors.",
		ConstLabels: additionalLabels,
	})
	m.registry.MustRegister(m.httpErrorsTotal)

	m.toolCallsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   MetricsNamespace,
		Subsystem:   MetricsSubsystemTools,
		Name:        "calls_total",
		Help:        "The total number of tool invocations by result.",
		ConstLabels: additionalLabels,
	}, []string{"tool", "result"})
	m.registry.MustRegister(m.toolCallsTotal)

	m.toolTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   MetricsNamespace,
		Subsystem:   MetricsSubsystemTools,
		Name:        "time",
		Help:        "Time to execute a tool call.",
		ConstLabels: additionalLabels,
	}, []string{"tool"})
	m.registry.MustRegister(m.toolTime)

	m.graphRequestTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   MetricsNamespace,
		Subsystem:   MetricsSubsystemGraph,
		Name:        "request_time",
		Help:        "Time of each HTTP request sent to Microsoft Graph.",
		ConstLabels: additionalLabels,
	}, []string{"method", "status_code"})
	m.registry.MustRegister(m.graphRequestTime)

	m.clientTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   MetricsNamespace,
		Subsystem:   MetricsSubsystemClient,
		Name:        "time",
		Help:        "Time to execute a Graph client method.",
		ConstLabels: additionalLabels,
	}, []string{"method", "success"})
	m.registry.MustRegister(m.clientTime)

	m.goroutineFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   MetricsNamespace,
		Subsystem:   MetricsSubsystemApp,
		Name:        "goroutine_failures_total",
		Help:        "The total number of recovered panics.",
		ConstLabels: additionalLabels,
	}, []string{"name"})
	m.registry.MustRegister(m.goroutineFailuresTotal)

	m.info = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   MetricsNamespace,
		Subsystem:   MetricsSubsystemApp,
		Name:        "info",
		Help:        "Build information of the running server.",
		ConstLabels: additionalLabels,
	}, []string{"version"})
	m.registry.MustRegister(m.info)
	m.info.With(prometheus.Labels{"version": info.Version}).Set(1)

	return m
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveAPIEndpointDuration(handler, method, statusCode string, elapsed float64) {
	if m != nil {
		m.apiTime.With(prometheus.Labels{"handler": handler, "method": method, "status_code": statusCode}).Observe(elapsed)
	}
}

func (m *Metrics) ObserveToolCall(tool, result string, elapsed float64) {
	if m != nil {
		m.toolCallsTotal.With(prometheus.Labels{"tool": tool, "result": result}).Inc()
		m.toolTime.With(prometheus.Labels{"tool": tool}).Observe(elapsed)
	}
}

func (m *Metrics) ObserveGraphRequest(method, statusCode string, elapsed float64) {
	if m != nil {
		m.graphRequestTime.With(prometheus.Labels{"method": method, "status_code": statusCode}).Observe(elapsed)
	}
}

func (m *Metrics) ObserveClientMethodDuration(method, success string, elapsed float64) {
	if m != nil {
		m.clientTime.With(prometheus.Labels{"method": method, "success": success}).Observe(elapsed)
	}
}

func (m *Metrics) ObserveGoroutineFailure(name string) {
	if m != nil {
		m.goroutineFailuresTotal.With(prometheus.Labels{"name": name}).Inc()
	}
}

func (m *Metrics) IncrementHTTPRequests() {
	if m != nil {
		m.httpRequestsTotal.Inc()
	}
}

func (m *Metrics) IncrementHTTPErrors() {
	if m != nil {
		m.httpErrorsTotal.Inc()
	}
}
