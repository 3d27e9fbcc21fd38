package editor

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	apperrors "github.com/naurium/icarus-mount-editor/errors"
)

// MountsFileName is the save file this tool edits.
const MountsFileName = "Mounts.json"

// SaveDirEnv overrides the player data directory, mainly for testing
// and non-Windows setups (Proton prefixes and the like).
const SaveDirEnv = "ICARUS_SAVE_DIR"

// playerDataDir returns the directory holding per-Steam-ID save
// folders.
func playerDataDir() string {
	if dir := os.Getenv(SaveDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(os.Getenv("LOCALAPPDATA"), "Icarus", "Saved", "PlayerData")
}

// DiscoverSteamIDs lists the Steam IDs under the player data directory
// that have a Mounts.json.
func DiscoverSteamIDs() ([]string, error) {
	base := playerDataDir()
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.PhaseLoad, apperrors.KindIO, err, "reading player data directory")
	}
	var ids []string
	for _, e := range entries {
		if !e.IsDir() || !isNumeric(e.Name()) {
			continue
		}
		if _, err := os.Stat(filepath.Join(base, e.Name(), MountsFileName)); err == nil {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// DefaultMountsPath resolves the Mounts.json path for a Steam ID. With
// an empty ID it auto-detects, which only succeeds when exactly one
// save folder exists.
func DefaultMountsPath(steamID string) (string, error) {
	if steamID != "" {
		return filepath.Join(playerDataDir(), steamID, MountsFileName), nil
	}
	ids, err := DiscoverSteamIDs()
	if err != nil {
		return "", err
	}
	switch len(ids) {
	case 0:
		return "", apperrors.NotFound(apperrors.PhaseLoad, "save file", MountsFileName)
	case 1:
		return filepath.Join(playerDataDir(), ids[0], MountsFileName), nil
	default:
		return "", apperrors.New(apperrors.PhaseLoad, apperrors.KindInvalidInput).
			Detail("multiple save folders found (%s), pick one with --steam-id", strings.Join(ids, ", ")).
			Build()
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
