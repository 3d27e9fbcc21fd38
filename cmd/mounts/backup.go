package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naurium/icarus-mount-editor/editor"
)

var backupFlagList bool

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up the save file, or list existing backups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := savePath()
		if err != nil {
			return err
		}
		if backupFlagList {
			backups, err := editor.ListBackups(path)
			if err != nil {
				return err
			}
			if len(backups) == 0 {
				fmt.Println("No backups found.")
				return nil
			}
			for _, b := range backups {
				fmt.Println(b)
			}
			return nil
		}
		backup, err := editor.BackupFile(path)
		if err != nil {
			return err
		}
		fmt.Printf("Backup created: %s\n", backup)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore [backup-file]",
	Short: "Restore the save file from a backup",
	Long: `Restore the save file from a backup.

Without an argument the most recent backup is used. The current save
file is itself backed up before being replaced, so a restore can
always be undone.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := savePath()
		if err != nil {
			return err
		}

		var backup string
		if len(args) == 1 {
			backup = args[0]
		} else {
			backups, err := editor.ListBackups(path)
			if err != nil {
				return err
			}
			if len(backups) == 0 {
				return fmt.Errorf("no backups of %s found", path)
			}
			backup = backups[len(backups)-1]
		}

		if !confirm(fmt.Sprintf("Restore %s from %s?", path, backup)) {
			fmt.Println("Aborted.")
			return nil
		}
		if err := editor.RestoreBackup(backup, path); err != nil {
			return err
		}
		fmt.Printf("Restored %s\n", path)
		return nil
	},
}

func init() {
	backupCmd.Flags().BoolVar(&backupFlagList, "list", false, "list backups instead of creating one")
	rootCmd.AddCommand(backupCmd, restoreCmd)
}
