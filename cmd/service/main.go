package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/2beens/swimcoach/internal"
	"github.com/2beens/swimcoach/internal/auth"
	"github.com/2beens/swimcoach/internal/config"
	"github.com/2beens/swimcoach/internal/logging"
	"github.com/2beens/swimcoach/internal/telemetry/metrics"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development | test | testing]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	host := flag.String("host", "", "host override")
	port := flag.Int("port", 0, "port override")
	logFile := flag.String("logfile", "", "log file path override")
	logLevel := flag.String("loglvl", "", "log level override")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env loaded: %s", err)
	}

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}
	if *host != "" {
		cfg.Host = *host
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *logFile != "" {
		cfg.LogsPath = *logFile
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	flushLogs := logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      *env,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        cfg.SentryDSN,
		SentryServerName: "swimcoach-service",
	})
	defer flushLogs()

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	if cfg.HoneycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			HoneycombTracingEnabled: cfg.HoneycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	go cleanSessions(ctx, server.AuthService(), server.MetricsManager(), cfg.SessionCleanupInterval.Duration)

	server.Serve(cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// cleanSessions drops expired session ids from the redis set until ctx is done.
func cleanSessions(ctx context.Context, authService *auth.Service, metricsManager *metrics.Manager, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debugln("session cleanup stopped")
			return
		case <-ticker.C:
			active, err := authService.ScanAndClean(ctx)
			if err != nil {
				log.Errorf("session cleanup: %s", err)
				continue
			}
			metricsManager.GaugeActiveSessions.Set(float64(active))
		}
	}
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(stdout)), nil
}
