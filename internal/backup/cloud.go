package backup

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/sadopc/dailies/internal/apperr"
)

// DefaultMaxBackups bounds how many mirrored backup files are retained.
const DefaultMaxBackups = 10

// FileInfo describes one stored backup file.
type FileInfo struct {
	ID           string
	Name         string
	ModifiedTime time.Time
	Size         int64
}

// CloudStore is the narrow contract of the remote file store. The local
// dataset never depends on it; a failed mirror leaves the store intact.
type CloudStore interface {
	Upload(ctx context.Context, name string, data []byte) (string, error)
	List(ctx context.Context) ([]FileInfo, error)
	Download(ctx context.Context, fileID string) ([]byte, error)
	Delete(ctx context.Context, fileID string) error
}

// Manager mirrors snapshots to a CloudStore and enforces retention.
type Manager struct {
	engine *Engine
	cloud  CloudStore
	max    int

	now func() time.Time
}

func NewManager(engine *Engine, cloud CloudStore, maxBackups int) *Manager {
	if maxBackups <= 0 {
		maxBackups = DefaultMaxBackups
	}
	return &Manager{engine: engine, cloud: cloud, max: maxBackups, now: time.Now}
}

// Backup exports the dataset, uploads it under a timestamped name and
// prunes files beyond the retention bound, oldest first.
func (m *Manager) Backup(ctx context.Context) (fileID, name string, err error) {
	data, err := m.engine.ExportJSON()
	if err != nil {
		return "", "", err
	}

	name = backupFileName(m.now())
	fileID, err = m.cloud.Upload(ctx, name, data)
	if err != nil {
		return "", "", apperr.External("upload backup", err)
	}

	if err := m.prune(ctx); err != nil {
		return fileID, name, err
	}
	return fileID, name, nil
}

// List returns stored backups newest first.
func (m *Manager) List(ctx context.Context) ([]FileInfo, error) {
	files, err := m.cloud.List(ctx)
	if err != nil {
		return nil, apperr.External("list backups", err)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].ModifiedTime.After(files[j].ModifiedTime)
	})
	return files, nil
}

// Restore downloads a stored backup and imports it, full replace.
func (m *Manager) Restore(ctx context.Context, fileID string) error {
	data, err := m.cloud.Download(ctx, fileID)
	if err != nil {
		return apperr.External("download backup", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return err
	}
	return m.engine.ImportAll(doc)
}

// Delete removes one stored backup.
func (m *Manager) Delete(ctx context.Context, fileID string) error {
	if err := m.cloud.Delete(ctx, fileID); err != nil {
		return apperr.External("delete backup", err)
	}
	return nil
}

func (m *Manager) prune(ctx context.Context) error {
	files, err := m.List(ctx)
	if err != nil {
		return err
	}
	for _, f := range files[min(m.max, len(files)):] {
		if err := m.cloud.Delete(ctx, f.ID); err != nil {
			return apperr.External("prune old backup", err)
		}
	}
	return nil
}

// backupFileName stamps the upload with the export instant; colons and
// dots are replaced so the name stays filesystem-safe.
func backupFileName(t time.Time) string {
	stamp := strings.NewReplacer(":", "-", ".", "-").Replace(t.UTC().Format(time.RFC3339))
	return "dailies-backup-" + stamp + ".json"
}
