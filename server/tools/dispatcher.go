package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mattermost/msteams-mcp-server/server/recovery"
	"github.com/mattermost/msteams-mcp-server/server/services"
)

const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultUnknown = "unknown_tool"
)

type Metrics interface {
	recovery.Metrics
	ObserveToolCall(tool, result string, elapsed float64)
}

type handler func(ctx context.Context, d *Dispatcher, raw map[string]any) (string, error)

// Dispatcher maps a tool call to exactly one domain service call and wraps the outcome in a
// tool result.
type Dispatcher struct {
	services *services.Services
	logger   logrus.FieldLogger
	metrics  Metrics
	validate *validator.Validate
}

func NewDispatcher(svc *services.Services, logger logrus.FieldLogger, metrics Metrics) *Dispatcher {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Dispatcher{
		services: svc,
		logger:   logger,
		metrics:  metrics,
		validate: validate,
	}
}

func (d *Dispatcher) ObserveGoroutineFailure(name string) {
	if d.metrics != nil {
		d.metrics.ObserveGoroutineFailure(name)
	}
}

func (d *Dispatcher) observeToolCall(tool, result string, elapsed float64) {
	if d.metrics != nil {
		d.metrics.ObserveToolCall(tool, result, elapsed)
	}
}

// Dispatch runs one tool call. It never panics and never returns nil: failures, including an
// unknown tool name, come back as error results.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, raw map[string]any) *mcplib.CallToolResult {
	start := time.Now()
	logger := d.logger.WithFields(logrus.Fields{
		"call_id": uuid.NewString(),
		"tool":    name,
	})

	h, ok := handlers[Name(name)]
	if !ok {
		d.observeToolCall(name, ResultUnknown, time.Since(start).Seconds())
		logger.Warn("Unknown tool")
		return errorResult(fmt.Sprintf("unknown tool: %s", name))
	}

	var text string
	err := recovery.Call("tool_"+name, recovery.Logrus(logger), d, func() error {
		var handlerErr error
		text, handlerErr = h(ctx, d, raw)
		return handlerErr
	})

	elapsed := time.Since(start)
	logger = logger.WithField("duration", elapsed.String())
	if err != nil {
		d.observeToolCall(name, ResultError, elapsed.Seconds())
		logger.WithError(err).Warn("Tool call failed")
		return errorResult(fmt.Sprintf("error executing %s: %s", name, err.Error()))
	}

	d.observeToolCall(name, ResultSuccess, elapsed.Seconds())
	logger.Debug("Tool call succeeded")
	return mcplib.NewToolResultText(text)
}

func errorResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
		IsError: true,
	}
}

// decode merges the registry defaults of the tool into the raw arguments and decodes them into
// the argument record.
func (d *Dispatcher) decode(name Name, raw map[string]any, args any) error {
	op := "decode arguments"

	merged := map[string]any{}
	if desc, ok := registryByName[name]; ok {
		for key, value := range desc.Defaults() {
			merged[key] = value
		}
	}
	for key, value := range raw {
		if value != nil {
			merged[key] = value
		}
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return services.InvalidArgumentError(op, errors.Wrap(err, "unable to encode arguments"))
	}
	if err := json.Unmarshal(data, args); err != nil {
		return services.InvalidArgumentError(op, errors.Wrap(err, "invalid arguments"))
	}

	if err := d.validate.Struct(args); err != nil {
		return services.InvalidArgumentError("validate arguments", validationError(err))
	}
	return nil
}

func validationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	problems := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s is required", field))
		case "oneof":
			problems = append(problems, fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
		case "email":
			problems = append(problems, fmt.Sprintf("%s must be a valid email address", field))
		case "min":
			problems = append(problems, fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param()))
		default:
			problems = append(problems, fmt.Sprintf("%s failed the %s check", field, fe.Tag()))
		}
	}
	return errors.New(strings.Join(problems, "; "))
}

// typed adapts a handler over a concrete argument record to the dispatch table.
func typed[A any](name Name, fn func(ctx context.Context, s *services.Services, args *A) (string, error)) handler {
	return func(ctx context.Context, d *Dispatcher, raw map[string]any) (string, error) {
		var args A
		if err := d.decode(name, raw, &args); err != nil {
			return "", err
		}
		return fn(ctx, d.services, &args)
	}
}

func clampLimit(limit int) int {
	if limit < MinLimit {
		return MinLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func prettyJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "unable to format the result")
	}
	return string(data), nil
}

func confirm(prefix string, v any) (string, error) {
	text, err := prettyJSON(v)
	if err != nil {
		return "", err
	}
	return prefix + text, nil
}

// dataResult formats the result of a read.
func dataResult(v any, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return prettyJSON(v)
}

func confirmResult(prefix string) func(v any, err error) (string, error) {
	return func(v any, err error) (string, error) {
		if err != nil {
			return "", err
		}
		return confirm(prefix, v)
	}
}

func fixedResult(text string, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return text, nil
}
