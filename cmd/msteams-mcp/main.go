package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mattermost/msteams-mcp-server/server/config"
	"github.com/mattermost/msteams-mcp-server/server/mcpserver"
	"github.com/mattermost/msteams-mcp-server/server/metrics"
	"github.com/mattermost/msteams-mcp-server/server/msteams"
	"github.com/mattermost/msteams-mcp-server/server/msteams/client_timerlayer"
	"github.com/mattermost/msteams-mcp-server/server/services"
	"github.com/mattermost/msteams-mcp-server/server/tools"
)

// Overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

type serveFlags struct {
	transport string
	listen    string
	envFile   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &serveFlags{}

	root := &cobra.Command{
		Use:           "msteams-mcp",
		Short:         "Model Context Protocol server for Microsoft Teams",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags)
		},
	}
	addServeFlags(root, flags)

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the Teams tools over stdio or Streamable HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags)
		},
	}
	addServeFlags(serve, flags)

	root.AddCommand(serve, newToolsCmd(), newVersionCmd())
	return root
}

func addServeFlags(cmd *cobra.Command, flags *serveFlags) {
	cmd.Flags().StringVar(&flags.transport, "transport", "", "transport to serve on: stdio or http (overrides MCP_TRANSPORT)")
	cmd.Flags().StringVar(&flags.listen, "listen", "", "listen address for the http transport (overrides MCP_LISTEN_ADDR)")
	cmd.Flags().StringVar(&flags.envFile, "env-file", config.DefaultEnvFile, "env file loaded before reading the environment")
}

func newToolsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Print the tool catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeTools(cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func writeTools(w io.Writer, format string) error {
	descriptors := tools.Descriptors()
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(descriptors); err != nil {
			return errors.Wrap(err, "failed to encode tools")
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(descriptors), "failed to encode tools")
	default:
		return errors.Errorf("unsupported format %q", format)
	}
}

func runServe(cmd *cobra.Command, flags *serveFlags) error {
	cfg, err := config.Load(flags.envFile)
	if err != nil {
		return err
	}
	if flags.transport != "" {
		cfg.Transport = flags.transport
	}
	if flags.listen != "" {
		cfg.ListenAddr = flags.listen
	}
	cfg.ProcessConfiguration()

	logger := newLogger(cfg, cmd.ErrOrStderr())
	if err := cfg.IsValid(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	logger.WithField("version", version).Infof("Starting %s\n%s", cmd.Root().Name(), cfg.Summary())

	m := metrics.NewMetrics(metrics.InstanceInfo{TenantID: cfg.TenantID, Version: version})

	opts := msteams.Options{
		BaseURL:  cfg.GraphBaseURL,
		MeUserID: cfg.MeUserID(),
		Logger:   logger,
		Observer: m,
	}
	var client msteams.Client
	if cfg.AuthMode == config.AuthModeDelegated {
		client = msteams.NewDeviceCode(cfg.TenantID, cfg.ClientID, opts)
	} else {
		client = msteams.NewApp(cfg.TenantID, cfg.ClientID, cfg.ClientSecret, opts)
	}
	if err := client.Connect(); err != nil {
		return errors.Wrap(err, "failed to connect to Microsoft Graph")
	}
	timed := client_timerlayer.New(client, m)

	ctx := cmd.Context()
	if err := timed.CheckConnection(ctx); err != nil {
		logger.WithError(err).Warn("Microsoft Graph connection check failed, tool calls may fail")
	}

	svc := services.New(timed, cfg.ServicesConfig(), logger, m)
	dispatcher := tools.NewDispatcher(svc, logger, m)
	monitor := mcpserver.NewMonitor(timed, mcpserver.DefaultMonitorInterval, logger, m)

	server := mcpserver.New(dispatcher, version, logger, m, monitor)
	return server.Serve(ctx, mcpserver.Transport(cfg.Transport), cfg.ListenAddr)
}

// newLogger writes to stderr so stdout stays reserved for the stdio transport.
func newLogger(cfg *config.Configuration, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
		logger.WithField("level", cfg.LogLevel).Warn("Unknown log level, using info")
	}
	logger.SetLevel(level)

	return logger
}
