// Command mounts inspects and edits Icarus mount save files
// (Mounts.json). It decodes the UE4 recorder blob inside each saved
// mount, so edits reach both the JSON metadata and the binary
// properties the game actually reads.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mounteditor "github.com/naurium/icarus-mount-editor"
	"github.com/naurium/icarus-mount-editor/editor"
)

var (
	flagFile     string
	flagSteamID  string
	flagNoBackup bool
	flagYes      bool
	flagVerbose  bool

	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:     "mounts",
	Version: mounteditor.Version,
	Short:   "Inspect and edit Icarus mount save files",
	Long: `mounts edits the Mounts.json save file of Icarus.

Each saved mount carries a binary recorder blob in UE4 tagged property
format. This tool decodes the blob, applies edits to both the JSON
metadata and the binary properties, and re-encodes everything with
correct sizes, so the game accepts the result.

The save file is located automatically from %LOCALAPPDATA% (or the
ICARUS_SAVE_DIR environment variable) when --file is not given. A
timestamped backup is written before every save unless --no-backup is
set.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			log = l
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagFile, "file", "f", "", "path to Mounts.json (default: auto-detect)")
	pf.StringVar(&flagSteamID, "steam-id", "", "Steam ID selecting the save folder")
	pf.BoolVar(&flagNoBackup, "no-backup", false, "do not create a backup before saving")
	pf.BoolVarP(&flagYes, "yes", "y", false, "answer yes to confirmation prompts")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging")
}

func main() {
	defer log.Sync()
	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

// savePath resolves the target file from the flags.
func savePath() (string, error) {
	if flagFile != "" {
		return flagFile, nil
	}
	return editor.DefaultMountsPath(flagSteamID)
}

// openEditor loads the save file selected by the global flags.
func openEditor() (*editor.Editor, error) {
	path, err := savePath()
	if err != nil {
		return nil, err
	}
	e := editor.New(editor.WithLogger(log))
	if err := e.Load(path); err != nil {
		return nil, err
	}
	return e, nil
}

// resolveMount accepts either a mount index or a mount name.
func resolveMount(e *editor.Editor, arg string) (*editor.Mount, error) {
	if idx, err := strconv.Atoi(arg); err == nil {
		return e.Mount(idx)
	}
	if m := e.FindByName(arg); m != nil {
		return m, nil
	}
	return nil, fmt.Errorf("no mount named %q (use 'mounts list' to see them)", arg)
}

// saveEditor writes the file back and reports what happened.
func saveEditor(e *editor.Editor) error {
	backup, err := e.Save("", !flagNoBackup)
	if err != nil {
		return err
	}
	if backup != "" {
		fmt.Printf("Backup created: %s\n", backup)
	}
	color.Green("Saved %d mount(s) to %s", len(e.Mounts()), e.Path())
	return nil
}

// confirm asks before destructive operations; --yes skips the prompt.
func confirm(prompt string) bool {
	if flagYes {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
