// Package syncer uploads offline export files to a CampusLog server.
// The web app can run against browser-local storage when offline; it
// exports those entries as JSON files which this package walks,
// converts, and POSTs to the server's import endpoint. A local SQLite
// state database remembers what was already sent.
package syncer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/F3lipe9/campuslog/internal/models"
)

// Stats tracks sync progress.
type Stats struct {
	FilesTotal   int
	FilesSynced  int
	FilesSkipped int
	FilesErrored int

	WaterSent       int
	SetsSent        int
	AssignmentsSent int
}

// Syncer walks an export directory and sends each file's entries to
// the server.
type Syncer struct {
	client *Client
	state  *StateDB
	dir    string
	dryRun bool
	log    *slog.Logger
	stats  Stats
}

// New creates a new Syncer. client may be nil in dry-run mode.
func New(client *Client, state *StateDB, exportDir string, dryRun bool, log *slog.Logger) *Syncer {
	return &Syncer{
		client: client,
		state:  state,
		dir:    exportDir,
		dryRun: dryRun,
		log:    log,
	}
}

// Run executes the sync: every .json export file not yet recorded in
// the state database is parsed and sent, oldest file first.
func (s *Syncer) Run() (*Stats, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return &s.stats, fmt.Errorf("reading export dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)
	s.stats.FilesTotal = len(files)

	for _, name := range files {
		if err := s.syncFile(name); err != nil {
			s.stats.FilesErrored++
			s.log.Error("sync failed", "file", name, "error", err)
			return &s.stats, fmt.Errorf("syncing %s: %w", name, err)
		}
	}

	return &s.stats, nil
}

func (s *Syncer) syncFile(name string) error {
	path := filepath.Join(s.dir, name)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}
	hash, err := HashFile(path)
	if err != nil {
		return fmt.Errorf("hashing: %w", err)
	}

	synced, err := s.state.IsSynced(name, info.Size(), hash)
	if err != nil {
		return fmt.Errorf("checking state: %w", err)
	}
	if synced {
		s.stats.FilesSkipped++
		s.log.Info("already synced, skipping", "file", name)
		return nil
	}

	payload, err := ParseExportFile(path)
	if err != nil {
		return err
	}

	if s.dryRun {
		s.log.Info("dry run, would send",
			"file", name,
			"water", len(payload.Water),
			"sets", len(payload.Sets),
			"assignments", len(payload.Assignments),
		)
		s.stats.FilesSynced++
		return nil
	}

	result, err := s.client.SendBatch(payload)
	if err != nil {
		return err
	}

	if err := s.state.MarkSynced(name, info.Size(), hash); err != nil {
		return fmt.Errorf("recording state: %w", err)
	}

	s.stats.FilesSynced++
	s.stats.WaterSent += result.WaterInserted
	s.stats.SetsSent += result.SetsInserted
	s.stats.AssignmentsSent += result.AssignmentsInserted
	s.log.Info("synced", "file", name,
		"water", result.WaterInserted,
		"sets", result.SetsInserted,
		"assignments", result.AssignmentsInserted,
	)
	return nil
}

// ParseExportFile reads one export file into an ImportPayload. Empty
// files (no entries of any kind) are rejected so a truncated export is
// noticed instead of silently marked synced.
func ParseExportFile(path string) (*models.ImportPayload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading: %w", err)
	}

	var payload models.ImportPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parsing export: %w", err)
	}

	if len(payload.Water) == 0 && len(payload.Sets) == 0 && len(payload.Assignments) == 0 {
		return nil, fmt.Errorf("export contains no entries")
	}
	return &payload, nil
}
