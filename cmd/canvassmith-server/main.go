package main

import (
	"os"
	"os/signal"
	"syscall"

	"canvassmith/internal/server"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagConfig        string
	flagHost          string
	flagPort          int
	flagStaticDir     string
	flagServeFrontend bool
	flagLogLevel      string
)

var rootCmd = &cobra.Command{
	Use:   "canvassmith-server",
	Short: "Canvas Smith status backend",
	Long:  "Serves the Canvas Smith JSON status API and, optionally, the built frontend.",
	RunE:  runServer,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to YAML config file")
	rootCmd.Flags().StringVar(&flagHost, "host", "", "bind address (overrides config)")
	rootCmd.Flags().IntVarP(&flagPort, "port", "p", 0, "listen port (overrides config)")
	rootCmd.Flags().StringVar(&flagStaticDir, "static-dir", "", "built frontend directory (overrides config)")
	rootCmd.Flags().BoolVar(&flagServeFrontend, "serve-frontend", false, "serve the built frontend")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
}

func runServer(cmd *cobra.Command, args []string) error {
	config, err := server.LoadConfig(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, &config)

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	backend := server.New(config)
	if err := backend.Start(); err != nil {
		return err
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	received := <-signals
	log.Infof("received %s", received)

	return backend.Stop()
}

func applyFlags(cmd *cobra.Command, config *server.Config) {
	if flagHost != "" {
		config.Host = flagHost
	}
	if flagPort > 0 {
		config.Port = flagPort
	}
	if flagStaticDir != "" {
		config.StaticDir = flagStaticDir
	}
	if cmd.Flags().Changed("serve-frontend") {
		config.ServeFrontend = flagServeFrontend
	}
	if flagLogLevel != "" {
		config.LogLevel = flagLogLevel
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
