package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <mount> <new-name>",
	Short: "Rename a mount",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEditor()
		if err != nil {
			return err
		}
		m, err := resolveMount(e, args[0])
		if err != nil {
			return err
		}
		old := m.Name()
		if err := e.Rename(m.Index, args[1]); err != nil {
			return err
		}
		fmt.Printf("%s -> %s\n", old, args[1])
		return saveEditor(e)
	},
}

var levelCmd = &cobra.Command{
	Use:   "level <mount> <level>",
	Short: "Set a mount's level (1-50), syncing its XP to the growth curve",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEditor()
		if err != nil {
			return err
		}
		m, err := resolveMount(e, args[0])
		if err != nil {
			return err
		}
		level, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("level must be a number: %q", args[1])
		}
		if err := e.SetLevel(m.Index, level); err != nil {
			return err
		}
		fmt.Printf("%s is now level %d\n", m.Name(), level)
		return saveEditor(e)
	},
}

var typeFlagName string

var typeCmd = &cobra.Command{
	Use:   "type <mount> <mount-type>",
	Short: "Change a mount's type, rewriting its blueprint references",
	Long: `Change a mount into another type, for example Terrenus -> Tusker.

All blueprint and AI setup references in the recorder blob are
rewritten; the actor instance ID is kept so the game still recognizes
the creature. See 'mounts types' for the available types.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEditor()
		if err != nil {
			return err
		}
		m, err := resolveMount(e, args[0])
		if err != nil {
			return err
		}
		if err := e.ChangeType(m.Index, args[1], typeFlagName); err != nil {
			return err
		}
		if !e.Modified() {
			fmt.Printf("%s is already a %s\n", m.Name(), args[1])
			return nil
		}
		fmt.Printf("%s is now a %s\n", m.Name(), m.TypeName())
		return saveEditor(e)
	},
}

var cloneFlagType string

var cloneCmd = &cobra.Command{
	Use:   "clone <mount> <new-name>",
	Short: "Duplicate a mount under a new name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEditor()
		if err != nil {
			return err
		}
		m, err := resolveMount(e, args[0])
		if err != nil {
			return err
		}
		idx, err := e.Clone(m.Index, args[1], cloneFlagType)
		if err != nil {
			return err
		}
		clone := e.Mounts()[idx]
		fmt.Printf("Cloned %s to %s (%s, index %d)\n",
			m.Name(), clone.Name(), clone.TypeName(), idx)
		return saveEditor(e)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <mount>",
	Short: "Delete a mount",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEditor()
		if err != nil {
			return err
		}
		m, err := resolveMount(e, args[0])
		if err != nil {
			return err
		}
		if !confirm(fmt.Sprintf("Delete %q (%s)?", m.Name(), m.TypeName())) {
			fmt.Println("Aborted.")
			return nil
		}
		name := m.Name()
		if err := e.Delete(m.Index); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", name)
		return saveEditor(e)
	},
}

var resetTalentsCmd = &cobra.Command{
	Use:   "reset-talents <mount>",
	Short: "Clear a mount's talents, refunding the points",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEditor()
		if err != nil {
			return err
		}
		m, err := resolveMount(e, args[0])
		if err != nil {
			return err
		}
		n, err := e.ResetTalents(m.Index)
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Printf("%s has no talents allocated\n", m.Name())
			return nil
		}
		fmt.Printf("Reset %d talent(s) on %s\n", n, m.Name())
		return saveEditor(e)
	},
}

var variantCmd = &cobra.Command{
	Use:   "variant <mount> <A1|A2|A3>",
	Short: "Set a Workshop horse's color variant",
	Long: `Set the color variant of a Workshop horse.

  A1  brown horse
  A2  black horse
  A3  white horse

Only Workshop horses (Mount_Horse_Standard) have variants; other
mounts use 'mounts skin' instead.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEditor()
		if err != nil {
			return err
		}
		m, err := resolveMount(e, args[0])
		if err != nil {
			return err
		}
		if err := e.SetHorseVariant(m.Index, args[1]); err != nil {
			return err
		}
		fmt.Printf("%s variant set to %s\n", m.Name(), args[1])
		return saveEditor(e)
	},
}

var skinCmd = &cobra.Command{
	Use:   "skin <mount> <index>",
	Short: "Set a mount's cosmetic skin index",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEditor()
		if err != nil {
			return err
		}
		m, err := resolveMount(e, args[0])
		if err != nil {
			return err
		}
		idx, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("skin index must be a number: %q", args[1])
		}
		if err := e.SetCosmeticSkin(m.Index, idx); err != nil {
			return err
		}
		fmt.Printf("%s skin set to %d\n", m.Name(), idx)
		return saveEditor(e)
	},
}

func init() {
	typeCmd.Flags().StringVar(&typeFlagName, "name", "", "also rename the mount")
	cloneCmd.Flags().StringVar(&cloneFlagType, "type", "", "convert the clone to this mount type")
	rootCmd.AddCommand(renameCmd, levelCmd, typeCmd, cloneCmd, deleteCmd,
		resetTalentsCmd, variantCmd, skinCmd)
}
