// Package main is the WellNest backend CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/wellnest/wellnest/internal/chat"
	"github.com/wellnest/wellnest/internal/classify"
	"github.com/wellnest/wellnest/internal/config"
	"github.com/wellnest/wellnest/internal/corpus"
	"github.com/wellnest/wellnest/internal/server"
	"github.com/wellnest/wellnest/internal/storage"
	"github.com/wellnest/wellnest/internal/watcher"
	"github.com/wellnest/wellnest/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/wellnest/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used. Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "chat":
		runChat()
	case "version", "--version", "-v":
		fmt.Printf("wellnest version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (retrieval scores, request bodies, etc.)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	descriptors, err := cfg.Descriptors()
	if err != nil {
		logger.Fatal("Invalid corpus configuration", zap.Error(err))
	}
	indices := corpus.BuildAll(descriptors, cfg.Chat.Stopwords, logger)
	if len(indices) == 0 {
		logger.Warn("no corpora loaded; retrieval will always fall back")
	}

	engine := chat.NewEngine(indices, logger,
		chat.WithMinScore(cfg.Chat.MinScore),
		chat.WithFallback(cfg.Chat.Fallback),
	)

	var classifier *classify.Classifier
	if cfg.Classifier.ModelPath != "" {
		classifier, err = classify.LoadModel(cfg.Classifier.ModelPath)
		if err != nil {
			logger.Warn("emotion model not loaded", zap.String("path", cfg.Classifier.ModelPath), zap.Error(err))
			classifier = nil
		} else {
			logger.Info("emotion model loaded", zap.Strings("labels", classifier.Labels()))
		}
	}

	store, err := storage.NewSQLiteStore(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to open user database", zap.Error(err))
	}
	defer store.Close()

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if cfg.Datasets.Watch {
		w := watcher.NewWatcher(cfg.Datasets.Dir, []string{".csv", ".xlsx", ".xls"}, logger)
		if err := w.Start(watchCtx); err != nil {
			logger.Warn("dataset watcher not started", zap.Error(err))
		} else {
			defer w.Stop()
		}
	}

	srv := server.NewServer(engine, classifier, store, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// buildMessage joins all positional args with spaces so multi-word messages
// work the same with or without shell quoting.
func buildMessage(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// chatURL returns the chatbot endpoint for a server base URL.
func chatURL(serverURL string) string {
	return strings.TrimRight(serverURL, "/") + "/api/chatbot"
}

func runChat() {
	fs := flag.NewFlagSet("chat", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:5000", "server URL")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: wellnest chat [flags] <message>\n\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[2:])

	message := buildMessage(fs.Args())
	if message == "" {
		fs.Usage()
		os.Exit(1)
	}

	payload, _ := json.Marshal(map[string]string{"message": message})
	resp, err := http.Post(chatURL(*serverURL), "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("Failed to read response: %v\n", err)
		os.Exit(1)
	}
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Server error (%d): %s\n", resp.StatusCode, strings.TrimSpace(string(body)))
		os.Exit(1)
	}

	var reply struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal(body, &reply); err != nil {
		fmt.Printf("Invalid response: %s\n", string(body))
		os.Exit(1)
	}
	fmt.Println(reply.Reply)
}

func printUsage() {
	fmt.Println(`WellNest backend

Usage:
  wellnest <command> [flags]

Commands:
  server    Start the HTTP API server
  chat      Send a message to a running server and print the reply
  version   Print version
  help      Show this help`)
}
