package editor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	apperrors "github.com/naurium/icarus-mount-editor/errors"
)

// BackupFile copies path to a timestamped sibling and returns the
// backup's path. Mounts.json becomes Mounts.backup_20260831_154500.json.
func BackupFile(path string) (string, error) {
	ext := filepath.Ext(path)
	stamp := time.Now().Format("20060102_150405")
	base := strings.TrimSuffix(path, ext) + ".backup_" + stamp
	backup := base + ext
	for n := 2; ; n++ {
		if _, err := os.Stat(backup); os.IsNotExist(err) {
			break
		}
		backup = fmt.Sprintf("%s_%d%s", base, n, ext)
	}
	if err := copyFile(path, backup); err != nil {
		return "", apperrors.Wrap(apperrors.PhaseSave, apperrors.KindIO, err, "creating backup")
	}
	return backup, nil
}

// ListBackups returns the backups of path, newest last. The timestamp
// format sorts lexically.
func ListBackups(path string) ([]string, error) {
	ext := filepath.Ext(path)
	pattern := strings.TrimSuffix(path, ext) + ".backup_*" + ext
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.PhaseLoad, apperrors.KindInvalidInput, err, "listing backups")
	}
	sort.Strings(matches)
	return matches, nil
}

// RestoreBackup replaces target with the contents of backup. The
// current target, if present, is first preserved as a fresh backup so
// a restore is never destructive.
func RestoreBackup(backup, target string) error {
	if _, err := os.Stat(backup); err != nil {
		return apperrors.Wrap(apperrors.PhaseLoad, apperrors.KindNotFound, err,
			fmt.Sprintf("backup %s", backup))
	}
	if _, err := os.Stat(target); err == nil {
		if _, err := BackupFile(target); err != nil {
			return err
		}
	}
	if err := copyFile(backup, target); err != nil {
		return apperrors.Wrap(apperrors.PhaseSave, apperrors.KindIO, err, "restoring backup")
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
