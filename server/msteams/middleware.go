package msteams

import (
	"net/http"
	"strconv"
	"time"

	khttp "github.com/microsoft/kiota-http-go"
)

type RequestObserver interface {
	ObserveGraphRequest(method, statusCode string, elapsed float64)
}

// metricsMiddleware times every Graph request, retries included, as it leaves the pipeline.
type metricsMiddleware struct {
	observer RequestObserver
}

func newMetricsMiddleware(observer RequestObserver) khttp.Middleware {
	return &metricsMiddleware{observer: observer}
}

func (m *metricsMiddleware) Intercept(pipeline khttp.Pipeline, middlewareIndex int, req *http.Request) (*http.Response, error) {
	now := time.Now()
	resp, err := pipeline.Next(req, middlewareIndex)
	elapsed := float64(time.Since(now)) / float64(time.Second)

	statusCode := "error"
	if resp != nil {
		statusCode = strconv.Itoa(resp.StatusCode)
	}
	m.observer.ObserveGraphRequest(req.Method, statusCode, elapsed)

	return resp, err
}
