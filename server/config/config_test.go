package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfiguration() *Configuration {
	return &Configuration{
		ClientID:          "client",
		ClientSecret:      "secret",
		TenantID:          "tenant",
		AuthMode:          AuthModeApplication,
		FanoutConcurrency: 4,
		Transport:         TransportStdio,
		LogFormat:         "text",
	}
}

func TestIsValid(t *testing.T) {
	for _, tc := range []struct {
		Name          string
		Setup         func(c *Configuration)
		ExpectedError string
	}{
		{Name: "valid", Setup: func(*Configuration) {}},
		{Name: "no tenant", Setup: func(c *Configuration) { c.TenantID = "" }, ExpectedError: "tenant ID should not be empty"},
		{Name: "no client", Setup: func(c *Configuration) { c.ClientID = "" }, ExpectedError: "client ID should not be empty"},
		{Name: "no secret", Setup: func(c *Configuration) { c.ClientSecret = "" }, ExpectedError: "client secret should not be empty"},
		{Name: "delegated without secret", Setup: func(c *Configuration) { c.AuthMode = AuthModeDelegated; c.ClientSecret = "" }},
		{Name: "unknown auth mode", Setup: func(c *Configuration) { c.AuthMode = "robot" }, ExpectedError: "auth mode should be one of"},
		{Name: "user mode without user", Setup: func(c *Configuration) { c.AuthMode = AuthModeUser }, ExpectedError: "user ID should not be empty"},
		{Name: "user mode", Setup: func(c *Configuration) { c.AuthMode = AuthModeUser; c.AuthUserID = "u1" }},
		{Name: "zero concurrency", Setup: func(c *Configuration) { c.FanoutConcurrency = 0 }, ExpectedError: "fan-out concurrency"},
		{Name: "http without address", Setup: func(c *Configuration) { c.Transport = TransportHTTP }, ExpectedError: "listen address"},
		{Name: "unknown transport", Setup: func(c *Configuration) { c.Transport = "sse" }, ExpectedError: "transport should be"},
		{Name: "unknown log format", Setup: func(c *Configuration) { c.LogFormat = "xml" }, ExpectedError: "log format"},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			c := validConfiguration()
			tc.Setup(c)

			err := c.IsValid()
			if tc.ExpectedError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.ExpectedError)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(envClientID, " client ")
	t.Setenv(envClientSecret, "secret")
	t.Setenv(envTenantID, "tenant")
	t.Setenv(envAuthMode, "User")
	t.Setenv(envAuthUserID, "u1")
	t.Setenv(envAddSignature, "true")
	t.Setenv(envGraphBaseURL, "http://localhost:9999/v1.0/")
	t.Setenv(envFanoutConcurrency, "2")

	c, err := Load()
	require.NoError(t, err)
	require.NoError(t, c.IsValid())

	assert.Equal(t, "client", c.ClientID)
	assert.Equal(t, "secret", c.ClientSecret)
	assert.Equal(t, AuthModeUser, c.AuthMode)
	assert.Equal(t, "u1", c.MeUserID())
	assert.True(t, c.AddSignature)
	assert.Equal(t, "http://localhost:9999/v1.0", c.GraphBaseURL)
	assert.Equal(t, 2, c.FanoutConcurrency)
	assert.Equal(t, TransportStdio, c.Transport)
	assert.Equal(t, DefaultListenAddr, c.ListenAddr)

	_, present := os.LookupEnv(envClientSecret)
	assert.False(t, present, "the secret should be removed from the environment")

	servicesConfig := c.ServicesConfig()
	assert.True(t, servicesConfig.AddSignature)
	assert.Equal(t, 2, servicesConfig.FanoutConcurrency)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("AZURE_TENANT_ID=from-file\nMCP_TRANSPORT=http\n"), 0o600))

	t.Setenv(envTenantID, "")
	os.Unsetenv(envTenantID)
	t.Setenv(envTransport, "")
	os.Unsetenv(envTransport)

	c, err := Load(envFile, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "from-file", c.TenantID)
	assert.Equal(t, TransportHTTP, c.Transport)
}

func TestMeUserIDDelegated(t *testing.T) {
	c := validConfiguration()
	c.AuthMode = AuthModeDelegated
	c.AuthUserID = "ignored"
	assert.Empty(t, c.MeUserID())
}

func TestSummaryHidesSecret(t *testing.T) {
	c := validConfiguration()
	summary := c.Summary()
	assert.NotContains(t, summary, "secret\n")
	assert.Contains(t, summary, "client secret: ********")
	assert.Contains(t, summary, "auth mode: application")
}
