package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// BackupSuffix is appended to a file name to form its backup path.
const BackupSuffix = ".jfmt.bak"

// BackupPath returns the sidecar backup path of path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup writes original to the backup path of path unless a backup
// already exists, so repeated runs keep the oldest content. It reports
// whether a backup was written.
func CreateBackup(ctx context.Context, path string, original []byte, mode os.FileMode) (bool, error) {
	backupPath := BackupPath(path)
	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat backup path: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, original, mode); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}
