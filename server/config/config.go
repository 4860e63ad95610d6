package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rusq/osenv/v2"

	"github.com/mattermost/msteams-mcp-server/server/msteams"
	"github.com/mattermost/msteams-mcp-server/server/services"
)

const (
	AuthModeApplication = "application"
	AuthModeDelegated   = "delegated"
	AuthModeUser        = "user"

	TransportStdio = "stdio"
	TransportHTTP  = "http"

	DefaultListenAddr = "127.0.0.1:8484"
	DefaultEnvFile    = ".env"
)

const (
	envClientID          = "AZURE_CLIENT_ID"
	envClientSecret      = "AZURE_CLIENT_SECRET"
	envTenantID          = "AZURE_TENANT_ID"
	envAuthMode          = "AUTH_MODE"
	envAuthUserID        = "AUTH_USER_ID"
	envAddSignature      = "MESSAGE_ADD_SIGNATURE"
	envSignature         = "MESSAGE_SIGNATURE"
	envDisplayName       = "BOT_DISPLAY_NAME"
	envGraphBaseURL      = "GRAPH_BASE_URL"
	envFanoutConcurrency = "GRAPH_FANOUT_CONCURRENCY"
	envTransport         = "MCP_TRANSPORT"
	envListenAddr        = "MCP_LISTEN_ADDR"
	envLogLevel          = "LOG_LEVEL"
	envLogFormat         = "LOG_FORMAT"
)

// Configuration is read once at startup and shared, read-only, by every component.
type Configuration struct {
	ClientID     string
	ClientSecret string
	TenantID     string
	AuthMode     string
	AuthUserID   string

	AddSignature bool
	Signature    string
	DisplayName  string

	GraphBaseURL      string
	FanoutConcurrency int

	Transport  string
	ListenAddr string

	LogLevel  string
	LogFormat string
}

// Load reads the configuration from the environment after loading the given env files. Missing
// env files are ignored. The client secret is removed from the environment once read.
func Load(envFiles ...string) (*Configuration, error) {
	for _, f := range envFiles {
		if f == "" {
			continue
		}
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return nil, errors.Wrapf(err, "unable to load env file %s", f)
		}
	}

	c := &Configuration{
		ClientID:          osenv.Value(envClientID, ""),
		ClientSecret:      osenv.Secret(envClientSecret, ""),
		TenantID:          osenv.Value(envTenantID, ""),
		AuthMode:          osenv.Value(envAuthMode, AuthModeApplication),
		AuthUserID:        osenv.Value(envAuthUserID, ""),
		AddSignature:      osenv.Value(envAddSignature, false),
		Signature:         osenv.Value(envSignature, ""),
		DisplayName:       osenv.Value(envDisplayName, ""),
		GraphBaseURL:      osenv.Value(envGraphBaseURL, msteams.DefaultBaseURL),
		FanoutConcurrency: osenv.Value(envFanoutConcurrency, services.DefaultFanoutConcurrency),
		Transport:         osenv.Value(envTransport, TransportStdio),
		ListenAddr:        osenv.Value(envListenAddr, DefaultListenAddr),
		LogLevel:          osenv.Value(envLogLevel, "info"),
		LogFormat:         osenv.Value(envLogFormat, "text"),
	}
	c.ProcessConfiguration()

	return c, nil
}

func (c *Configuration) ProcessConfiguration() {
	c.ClientID = strings.TrimSpace(c.ClientID)
	c.ClientSecret = strings.TrimSpace(c.ClientSecret)
	c.TenantID = strings.TrimSpace(c.TenantID)
	c.AuthMode = strings.ToLower(strings.TrimSpace(c.AuthMode))
	c.AuthUserID = strings.TrimSpace(c.AuthUserID)
	c.DisplayName = strings.TrimSpace(c.DisplayName)
	c.GraphBaseURL = strings.TrimRight(strings.TrimSpace(c.GraphBaseURL), "/")
	c.Transport = strings.ToLower(strings.TrimSpace(c.Transport))
	c.ListenAddr = strings.TrimSpace(c.ListenAddr)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}

func (c *Configuration) IsValid() error {
	if c.TenantID == "" {
		return errors.New("tenant ID should not be empty")
	}
	if c.ClientID == "" {
		return errors.New("client ID should not be empty")
	}

	switch c.AuthMode {
	case AuthModeApplication, AuthModeUser:
		if c.ClientSecret == "" {
			return errors.New("client secret should not be empty")
		}
	case AuthModeDelegated:
	default:
		return errors.Errorf("auth mode should be one of %s, %s or %s, got %q", AuthModeApplication, AuthModeDelegated, AuthModeUser, c.AuthMode)
	}

	if c.AuthMode == AuthModeUser && c.AuthUserID == "" {
		return errors.New("user ID should not be empty in user auth mode")
	}
	if c.FanoutConcurrency < 1 {
		return errors.New("fan-out concurrency should be greater than zero")
	}

	switch c.Transport {
	case TransportStdio:
	case TransportHTTP:
		if c.ListenAddr == "" {
			return errors.New("listen address should not be empty with the http transport")
		}
	default:
		return errors.Errorf("transport should be %s or %s, got %q", TransportStdio, TransportHTTP, c.Transport)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.Errorf("log format should be text or json, got %q", c.LogFormat)
	}
	return nil
}

// MeUserID is the user served by "me" routes, empty when the signed in user is used.
func (c *Configuration) MeUserID() string {
	if c.AuthMode == AuthModeDelegated {
		return ""
	}
	return c.AuthUserID
}

func (c *Configuration) ServicesConfig() services.Config {
	return services.Config{
		AddSignature:      c.AddSignature,
		Signature:         c.Signature,
		DisplayName:       c.DisplayName,
		FanoutConcurrency: c.FanoutConcurrency,
	}
}

// Summary describes the configuration without secrets, for the startup banner.
func (c *Configuration) Summary() string {
	lines := []string{
		fmt.Sprintf("tenant: %s", c.TenantID),
		fmt.Sprintf("client: %s", c.ClientID),
		fmt.Sprintf("client secret: %s", maskSecret(c.ClientSecret)),
		fmt.Sprintf("auth mode: %s", c.AuthMode),
	}
	if c.AuthUserID != "" {
		lines = append(lines, fmt.Sprintf("user: %s", c.AuthUserID))
	}
	lines = append(lines,
		fmt.Sprintf("graph: %s", c.GraphBaseURL),
		fmt.Sprintf("signature: %t", c.AddSignature),
		fmt.Sprintf("transport: %s", c.Transport),
	)
	if c.Transport == TransportHTTP {
		lines = append(lines, fmt.Sprintf("listen: %s", c.ListenAddr))
	}
	return strings.Join(lines, "\n")
}

func maskSecret(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	return "********"
}
