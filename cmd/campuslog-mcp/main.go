package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/F3lipe9/campuslog/internal/config"
	"github.com/F3lipe9/campuslog/internal/mcp"
	"github.com/F3lipe9/campuslog/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// The MCP server speaks stdio, so logs go to stderr to keep stdout
// clean for the protocol.
func main() {
	serverURL := flag.String("server", "", "CampusLog server URL for remote mode (e.g. https://campuslog.tail1234.ts.net)")
	configPath := flag.String("config", "", "path to config file for local database mode")
	user := flag.String("user", "", "login to act as")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("campuslog-mcp", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *serverURL == "" && *configPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: campuslog-mcp -server <URL> [-user login]   (remote mode)\n")
		fmt.Fprintf(os.Stderr, "       campuslog-mcp -config <path> [-user login] (local database mode)\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	ctx := context.Background()

	var ds mcp.DataSource
	userID := 0

	if *serverURL != "" {
		ds = mcp.NewHTTPClient(*serverURL, *user)
		log.Info("remote mode", "server", *serverURL)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		db, err := storage.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		login := *user
		if login == "" {
			login = "local"
		}
		uid, err := db.GetOrCreateUser(ctx, login)
		if err != nil {
			log.Error("failed to resolve user", "login", login, "error", err)
			os.Exit(1)
		}
		userID = uid
		ds = db
		log.Info("local mode", "login", login)
	}

	srv := mcp.New(ds, Version, log)

	log.Info("MCP server starting on stdio", "version", Version)
	err := mcpserver.ServeStdio(srv,
		mcpserver.WithStdioContextFunc(func(ctx context.Context) context.Context {
			if userID > 0 {
				return mcp.WithUserID(ctx, userID)
			}
			return ctx
		}),
	)
	if err != nil {
		log.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}
