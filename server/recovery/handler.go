package recovery

import (
	"fmt"
	"runtime/debug"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LogErrorFunc receives the panic message followed by alternating keys and values.
type LogErrorFunc func(msg string, keyValuePairs ...any)

// Logrus returns a LogErrorFunc logging at error level with the key/value pairs as fields.
func Logrus(logger logrus.FieldLogger) LogErrorFunc {
	return func(msg string, keyValuePairs ...any) {
		fields := logrus.Fields{}
		for i := 0; i+1 < len(keyValuePairs); i += 2 {
			fields[fmt.Sprint(keyValuePairs[i])] = keyValuePairs[i+1]
		}
		logger.WithFields(fields).Error(msg)
	}
}

func observe(name string, logError LogErrorFunc, metrics Metrics, msg string, keyValuePairs ...any) {
	if metrics != nil {
		metrics.ObserveGoroutineFailure(name)
	}
	logError(fmt.Sprintf(msg, name), append(keyValuePairs, "stack", string(debug.Stack()))...)
}

// Call runs callback in the calling goroutine. A panic is logged, counted and returned as an
// error so the caller can still answer its client.
func Call(name string, logError LogErrorFunc, metrics Metrics, callback func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			observe(name, logError, metrics, "Recovering from panic in %s", "panic", r)
			err = errors.Errorf("panic in %s: %v", name, r)
		}
	}()

	return callback()
}

// GoWorker runs callback in a goroutine and starts it again after a panic or an unexpected
// return, until isQuitting reports true.
func GoWorker(name string, logError LogErrorFunc, metrics Metrics, isQuitting func() bool, callback func()) {
	var start func()

	restart := func() {
		if isQuitting() {
			return
		}

		if r := recover(); r != nil {
			observe(name, logError, metrics, "Recovering from panic in %s", "panic", r)
		} else {
			observe(name, logError, metrics, "Recovering from unexpected exit in %s")
		}

		go start()
	}

	start = func() {
		defer restart()
		callback()
	}

	go start()
}
