package mcpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/msteams-mcp-server/server/metrics"
	"github.com/mattermost/msteams-mcp-server/server/tools"
)

type fakeDispatcher struct {
	mu    sync.Mutex
	names []string
	args  []map[string]any
}

func (d *fakeDispatcher) Dispatch(_ context.Context, name string, raw map[string]any) *mcplib.CallToolResult {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.names = append(d.names, name)
	d.args = append(d.args, raw)
	return mcplib.NewToolResultText("ok: " + name)
}

type fakeChecker struct {
	err error
}

func (c *fakeChecker) CheckConnection(context.Context) error {
	return c.err
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestHandleToolDelegates(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	s := New(dispatcher, "test", newTestLogger(), nil, nil)

	req := mcplib.CallToolRequest{}
	req.Params.Name = string(tools.SendMessage)
	req.Params.Arguments = map[string]any{"teamId": "T1"}

	result, err := s.handleTool(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Content, 1)
	assert.Equal(t, "ok: send_message", result.Content[0].(mcplib.TextContent).Text)
	assert.Equal(t, []string{"send_message"}, dispatcher.names)
	assert.Equal(t, map[string]any{"teamId": "T1"}, dispatcher.args[0])
}

func TestToolsAdvertised(t *testing.T) {
	s := New(&fakeDispatcher{}, "test", newTestLogger(), nil, nil)

	message := json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list","params":{}}`)
	response := s.mcp.HandleMessage(context.Background(), message)

	data, err := json.Marshal(response)
	require.NoError(t, err)
	for _, d := range tools.Descriptors() {
		assert.Contains(t, string(data), `"name":"`+string(d.Name)+`"`)
	}
}

func TestHealthz(t *testing.T) {
	for _, tc := range []struct {
		Name           string
		CheckErr       error
		Check          bool
		ExpectedStatus int
		ExpectedBody   string
	}{
		{Name: "not checked yet", ExpectedStatus: http.StatusOK, ExpectedBody: "ok"},
		{Name: "healthy", Check: true, ExpectedStatus: http.StatusOK, ExpectedBody: "ok"},
		{Name: "unhealthy", Check: true, CheckErr: errors.New("token expired"), ExpectedStatus: http.StatusServiceUnavailable, ExpectedBody: "token expired"},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			monitor := NewMonitor(&fakeChecker{err: tc.CheckErr}, 0, newTestLogger(), nil)
			if tc.Check {
				monitor.check()
			}

			s := New(&fakeDispatcher{}, "test", newTestLogger(), nil, monitor)
			w := httptest.NewRecorder()
			s.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tc.ExpectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.ExpectedBody)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	m := metrics.NewMetrics(metrics.InstanceInfo{TenantID: "tenant", Version: "test"})
	monitor := NewMonitor(&fakeChecker{}, 0, newTestLogger(), m)
	s := New(&fakeDispatcher{}, "test", newTestLogger(), m, monitor)
	router := s.Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.Contains(body, "msteams_mcp_http_requests_total"), body)
	assert.Contains(t, body, `handler="/healthz"`)
}

func TestMonitorStartStop(t *testing.T) {
	checked := make(chan struct{}, 1)
	checker := checkerFunc(func(context.Context) error {
		select {
		case checked <- struct{}{}:
		default:
		}
		return nil
	})

	monitor := NewMonitor(checker, 0, newTestLogger(), nil)
	monitor.Start()
	defer monitor.Stop()

	<-checked
	healthy, _, err := monitor.Healthy()
	assert.True(t, healthy)
	assert.NoError(t, err)
}

type checkerFunc func(ctx context.Context) error

func (f checkerFunc) CheckConnection(ctx context.Context) error {
	return f(ctx)
}

func TestServeUnsupportedTransport(t *testing.T) {
	s := New(&fakeDispatcher{}, "test", newTestLogger(), nil, nil)
	err := s.Serve(context.Background(), Transport("carrier-pigeon"), "")
	require.Error(t, err)
}
