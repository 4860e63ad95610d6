package recovery_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/msteams-mcp-server/server/recovery"
)

type mockMetrics struct {
	mu    sync.Mutex
	names []string
}

func (m *mockMetrics) ObserveGoroutineFailure(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.names = append(m.names, name)
}

func (m *mockMetrics) failures() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.names...)
}

type logRecorder struct {
	mu       sync.Mutex
	messages []string
}

func (l *logRecorder) logError(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

func (l *logRecorder) logged() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.messages...)
}

func assertReceive[X any](t *testing.T, c chan X, failureMessage string) {
	t.Helper()
	select {
	case <-c:
	case <-time.After(5 * time.Second):
		require.Fail(t, failureMessage)
	}
}

func TestLogrus(t *testing.T) {
	logger, hook := test.NewNullLogger()

	recovery.Logrus(logger)("Recovering from panic in tool_list_teams", "panic", "boom", "stack", "trace", "dangling")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "Recovering from panic in tool_list_teams", entry.Message)
	assert.Equal(t, logrus.Fields{"panic": "boom", "stack": "trace"}, entry.Data)
}

func TestCall(t *testing.T) {
	for _, tc := range []struct {
		Name             string
		Callback         func() error
		ExpectedError    string
		ExpectedLogged   []string
		ExpectedFailures []string
	}{
		{
			Name:     "success",
			Callback: func() error { return nil },
		},
		{
			Name:          "callback error is returned untouched",
			Callback:      func() error { return errors.New("graph unavailable") },
			ExpectedError: "graph unavailable",
		},
		{
			Name:             "panic becomes an error",
			Callback:         func() error { panic("boom") },
			ExpectedError:    "panic in tool_send_message: boom",
			ExpectedLogged:   []string{"Recovering from panic in tool_send_message"},
			ExpectedFailures: []string{"tool_send_message"},
		},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			logs := &logRecorder{}
			metrics := &mockMetrics{}

			err := recovery.Call("tool_send_message", logs.logError, metrics, tc.Callback)
			if tc.ExpectedError == "" {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tc.ExpectedError)
			}
			assert.Equal(t, tc.ExpectedLogged, logs.logged())
			assert.Equal(t, tc.ExpectedFailures, metrics.failures())
		})
	}
}

func TestCallNilMetrics(t *testing.T) {
	logs := &logRecorder{}
	err := recovery.Call("fanout", logs.logError, nil, func() error { panic("boom") })
	require.EqualError(t, err, "panic in fanout: boom")
	assert.Len(t, logs.logged(), 1)
}

func TestGoWorker(t *testing.T) {
	t.Run("quitting normally does not restart", func(t *testing.T) {
		var quitting atomic.Bool
		done := make(chan struct{})
		logs := &logRecorder{}
		metrics := &mockMetrics{}

		recovery.GoWorker("health_monitor", logs.logError, metrics, quitting.Load, func() {
			quitting.Store(true)
			close(done)
		})

		assertReceive(t, done, "worker failed to run")
		time.Sleep(50 * time.Millisecond)
		assert.Empty(t, logs.logged())
		assert.Empty(t, metrics.failures())
	})

	for _, tc := range []struct {
		Name           string
		Fail           func()
		ExpectedLogged string
	}{
		{Name: "panic restarts", Fail: func() { panic("boom") }, ExpectedLogged: "Recovering from panic in health_monitor"},
		{Name: "unexpected exit restarts", Fail: func() {}, ExpectedLogged: "Recovering from unexpected exit in health_monitor"},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			var quitting atomic.Bool
			var runs atomic.Int32
			restarted := make(chan struct{})
			logs := &logRecorder{}
			metrics := &mockMetrics{}

			recovery.GoWorker("health_monitor", logs.logError, metrics, quitting.Load, func() {
				if runs.Add(1) == 1 {
					tc.Fail()
					return
				}
				quitting.Store(true)
				close(restarted)
			})

			assertReceive(t, restarted, "worker was not restarted")
			assert.Equal(t, []string{tc.ExpectedLogged}, logs.logged())
			assert.Equal(t, []string{"health_monitor"}, metrics.failures())
		})
	}
}
