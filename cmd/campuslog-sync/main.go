package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/F3lipe9/campuslog/internal/syncer"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "CampusLog server URL (e.g. https://campuslog.tail1234.ts.net)")
	exportPath := flag.String("path", "", "path to the directory of exported .json files")
	apiKey := flag.String("api-key", os.Getenv("CAMPUSLOG_AUTH_API_KEY"), "import API key (defaults to CAMPUSLOG_AUTH_API_KEY)")
	user := flag.String("user", "", "login to sync entries into (X-User header)")
	dryRun := flag.Bool("dry-run", false, "parse and report but don't send to server")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("campuslog-sync", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *exportPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: campuslog-sync -server <URL> -path <export dir> [-user login] [-dry-run]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if !*dryRun {
		if *serverURL == "" {
			fmt.Fprintf(os.Stderr, "Error: -server is required (or use -dry-run)\n")
			os.Exit(1)
		}
		if *apiKey == "" {
			fmt.Fprintf(os.Stderr, "Error: -api-key is required (or set CAMPUSLOG_AUTH_API_KEY)\n")
			os.Exit(1)
		}
	}

	// Strip trailing slash from server URL
	*serverURL = strings.TrimRight(*serverURL, "/")

	info, err := os.Stat(*exportPath)
	if err != nil || !info.IsDir() {
		log.Error("export directory not found", "path", *exportPath)
		os.Exit(1)
	}

	// Open state database
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Error("failed to get home directory", "error", err)
		os.Exit(1)
	}
	stateDir := filepath.Join(homeDir, ".campuslog-sync")

	state, err := syncer.OpenStateDB(stateDir)
	if err != nil {
		log.Error("failed to open state database", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	// Create client (nil-safe in dry-run mode)
	var client *syncer.Client
	if !*dryRun {
		client = syncer.NewClient(*serverURL, *apiKey, *user)
	}

	if *dryRun {
		log.Info("DRY RUN mode — files will be parsed but not sent")
	}

	// Run sync
	s := syncer.New(client, state, *exportPath, *dryRun, log)
	stats, err := s.Run()
	if err != nil {
		log.Error("sync failed", "error", err)
		printStats(stats)
		os.Exit(1)
	}

	printStats(stats)
	log.Info("sync complete")
}

func printStats(stats *syncer.Stats) {
	fmt.Println()
	fmt.Println("=== Sync Summary ===")
	fmt.Printf("  Files total:    %d\n", stats.FilesTotal)
	fmt.Printf("  Files synced:   %d\n", stats.FilesSynced)
	fmt.Printf("  Files skipped:  %d (already synced)\n", stats.FilesSkipped)
	fmt.Printf("  Files errored:  %d\n", stats.FilesErrored)
	fmt.Println()
	fmt.Printf("  Water entries:  %d\n", stats.WaterSent)
	fmt.Printf("  Workout sets:   %d\n", stats.SetsSent)
	fmt.Printf("  Assignments:    %d\n", stats.AssignmentsSent)
	fmt.Println()
}
