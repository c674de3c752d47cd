package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxBackups is the number of snapshots kept before rotation.
	MaxBackups = 14

	backupDirName    = "backups"
	backupFilePrefix = "yodiet-"
	backupFileSuffix = ".db"
)

// Info describes one snapshot on disk.
type Info struct {
	Path    string
	Created time.Time
	Size    int64
}

// Manager snapshots the database file into a backups directory next to it
// and rotates old snapshots out.
type Manager struct {
	dbPath    string
	backupDir string
}

func NewManager(dbPath string) *Manager {
	return &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(filepath.Dir(dbPath), backupDirName),
	}
}

func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Create copies the database file into the backup directory. The short
// random suffix keeps two snapshots taken within the same second apart.
func (m *Manager) Create() (string, error) {
	if _, err := os.Stat(m.dbPath); err != nil {
		return "", fmt.Errorf("database not found at %s: %w", m.dbPath, err)
	}
	if err := os.MkdirAll(m.backupDir, 0o700); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	name := fmt.Sprintf("%s%s-%s%s",
		backupFilePrefix,
		time.Now().Format("20060102-150405"),
		uuid.NewString()[:8],
		backupFileSuffix,
	)
	path := filepath.Join(m.backupDir, name)

	if err := copyFile(m.dbPath, path); err != nil {
		return "", fmt.Errorf("copy database: %w", err)
	}

	if err := m.rotate(); err != nil {
		return path, fmt.Errorf("rotate old backups: %w", err)
	}
	return path, nil
}

// List returns the snapshots on disk, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, backupFilePrefix) || !strings.HasSuffix(name, backupFileSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:    filepath.Join(m.backupDir, name),
			Created: info.ModTime(),
			Size:    info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Created.After(backups[j].Created)
	})
	return backups, nil
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return err
	}
	defer source.Close()

	dest, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dest.Close()

	if _, err := dest.ReadFrom(source); err != nil {
		return err
	}
	return dest.Sync()
}
