package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DirStore implements CloudStore over a local directory, typically one
// synced by an external client. Files are stored as <id>__<name> so the
// original upload name survives the opaque id.
type DirStore struct {
	dir string
}

func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup directory: %w", err)
	}
	return &DirStore{dir: dir}, nil
}

func (d *DirStore) Upload(_ context.Context, name string, data []byte) (string, error) {
	id := uuid.NewString()
	path := filepath.Join(d.dir, id+"__"+name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write backup file: %w", err)
	}
	return id, nil
}

func (d *DirStore) List(_ context.Context) ([]FileInfo, error) {
	dirents, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, fmt.Errorf("read backup directory: %w", err)
	}

	var files []FileInfo
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		id, name, ok := strings.Cut(de.Name(), "__")
		if !ok {
			continue // not one of ours
		}
		info, err := de.Info()
		if err != nil {
			return nil, fmt.Errorf("stat backup file: %w", err)
		}
		files = append(files, FileInfo{
			ID:           id,
			Name:         name,
			ModifiedTime: info.ModTime(),
			Size:         info.Size(),
		})
	}
	return files, nil
}

func (d *DirStore) Download(_ context.Context, fileID string) ([]byte, error) {
	path, err := d.pathFor(fileID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup file: %w", err)
	}
	return data, nil
}

func (d *DirStore) Delete(_ context.Context, fileID string) error {
	path, err := d.pathFor(fileID)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove backup file: %w", err)
	}
	return nil
}

func (d *DirStore) pathFor(fileID string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(d.dir, fileID+"__*"))
	if err != nil {
		return "", fmt.Errorf("glob backup file: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("backup file %s not found", fileID)
	}
	return matches[0], nil
}
