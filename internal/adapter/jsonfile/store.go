// Package jsonfile persists the memory store as a single JSON document. The
// document is loaded on Open and rewritten atomically after every mutation.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/adapter/memory"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

// Open loads path (a missing file is an empty store) and returns a memory
// store that writes back to it on every commit.
func Open(path string, log *slog.Logger) (*memory.Store, error) {
	f := &file{path: path, log: log.With("adapter", "jsonfile")}

	snap, err := f.load()
	if err != nil {
		return nil, err
	}

	store, err := memory.FromSnapshot(snap, memory.WithCommitHook(f.save))
	if err != nil {
		return nil, domain.NewStorageError("load "+path, err)
	}

	f.log.Info("json store opened",
		slog.String("path", path),
		slog.Int("applications", len(snap.Applications)),
		slog.Int("contacts", len(snap.Contacts)),
		slog.Int("interview_stages", len(snap.InterviewStages)),
		slog.Int("job_boards", len(snap.JobBoards)),
	)
	return store, nil
}

type file struct {
	path string
	log  *slog.Logger
}

func (f *file) load() (memory.Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return memory.Snapshot{}, nil
	}
	if err != nil {
		return memory.Snapshot{}, domain.NewStorageError("read "+f.path, err)
	}

	var snap memory.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return memory.Snapshot{}, domain.NewStorageError("decode "+f.path, err)
	}
	if snap.Version > memory.SnapshotVersion {
		return memory.Snapshot{}, domain.NewStorageError("decode "+f.path,
			fmt.Errorf("unsupported version %d", snap.Version))
	}
	return snap, nil
}

// save writes snap to a temp file in the target directory and renames it over
// the document.
func (f *file) save(snap memory.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}

	f.log.Debug("json store saved", slog.String("path", f.path), slog.Int("bytes", len(data)))
	return nil
}
