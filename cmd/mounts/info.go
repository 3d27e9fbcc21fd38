package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/naurium/icarus-mount-editor/editor"
	"github.com/naurium/icarus-mount-editor/mounttype"
	"github.com/naurium/icarus-mount-editor/ue4"
)

var (
	header  = color.New(color.FgCyan, color.Bold)
	dim     = color.New(color.FgHiBlack)
	warnTag = color.New(color.FgYellow, color.Bold)
	okTag   = color.New(color.FgGreen)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the mounts in the save file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEditor()
		if err != nil {
			return err
		}
		if len(e.Mounts()) == 0 {
			fmt.Println("No mounts in save file.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, header.Sprint("#\tNAME\tTYPE\tLEVEL\tXP\tHEALTH\tSTAMINA"))
		for _, m := range e.Mounts() {
			info := m.Info()
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%d\n",
				info.Index, info.Name, info.Type, info.Level,
				info.Experience, info.Health, info.Stamina)
		}
		w.Flush()
		dim.Printf("\n%s\n", e.Path())
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <mount>",
	Short: "Show one mount in detail",
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

		info := m.Info()
		header.Printf("%s", info.Name)
		fmt.Printf("  (%s, index %d)\n\n", info.Type, info.Index)

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Level\t%d\n", info.Level)
		fmt.Fprintf(w, "Experience\t%d\n", info.Experience)
		fmt.Fprintf(w, "Health\t%d\n", info.Health)
		fmt.Fprintf(w, "Stamina\t%d\n", info.Stamina)
		for _, path := range []string{
			"AISetupRowName", "ActorClassName", "ObjectFName", "ActorPathName",
		} {
			if v, ok := m.Value(path); ok {
				fmt.Fprintf(w, "%s\t%v\n", path, v)
			}
		}
		if p := m.Properties.Find("Talents"); p != nil && p.Type == ue4.TypeArray {
			fmt.Fprintf(w, "Talents\t%d allocated\n", len(p.Array.Elements))
		}
		w.Flush()

		issues, err := e.Validate(info.Index)
		if err != nil {
			return err
		}
		fmt.Println()
		if len(issues) == 0 {
			okTag.Println("No issues found.")
		} else {
			for _, issue := range issues {
				warnTag.Print("warning: ")
				fmt.Println(issue)
			}
		}
		return nil
	},
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the known mount types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, header.Sprint("NAME\tAI SETUP\tRIDEABLE\tDESCRIPTION"))
		for _, mt := range mounttype.All() {
			rideable := "yes"
			if !mt.Rideable {
				rideable = "companion only"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", mt.Name, mt.AISetup, rideable, mt.Description)
		}
		w.Flush()

		fmt.Println()
		for _, mt := range mounttype.All() {
			if len(mt.Skins) == 0 {
				continue
			}
			fmt.Printf("%s skins:\n", mt.Name)
			for _, s := range mt.Skins {
				fmt.Printf("  %d  %s - %s\n", s.Index, s.Name, s.Description)
			}
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every mount for inconsistent data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEditor()
		if err != nil {
			return err
		}
		broken := 0
		for _, m := range e.Mounts() {
			issues, err := e.Validate(m.Index)
			if err != nil {
				return err
			}
			if len(issues) == 0 {
				okTag.Printf("[%d] %s: OK\n", m.Index, m.Name())
				continue
			}
			broken++
			warnTag.Printf("[%d] %s: %d issue(s)\n", m.Index, m.Name(), len(issues))
			for _, issue := range issues {
				fmt.Printf("    - %s\n", issue)
			}
		}
		if broken > 0 {
			return fmt.Errorf("%d mount(s) with issues", broken)
		}
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <mount> <path>",
	Short: "Read a blob property by path",
	Long: `Read a property from a mount's recorder blob.

Paths are dot-separated and may index struct arrays:

  mounts get Clover Experience
  mounts get 0 CharacterRecord.CurrentHealth
  mounts get 0 'IntVariables[0].iVariable'`,
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
		p := m.Properties.Find(args[1])
		if p == nil {
			return fmt.Errorf("property %q not found", args[1])
		}
		fmt.Println(p.ValueString())
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <mount> <path> <value>",
	Short: "Write a blob property by path",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEditor()
		if err != nil {
			return err
		}
		m, err := resolveMount(e, args[0])
		if err != nil {
			return err
		}
		if err := e.SetValue(m.Index, args[1], parseValue(args[2])); err != nil {
			return err
		}
		return saveEditor(e)
	},
}

// parseValue guesses the Go type of a command line value. The editor
// rejects it if it does not suit the property.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved save file and Steam IDs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := editor.DiscoverSteamIDs()
		if err == nil && len(ids) > 0 {
			fmt.Println("Save folders:")
			for _, id := range ids {
				fmt.Printf("  %s\n", id)
			}
		} else {
			fmt.Println("No save folders found.")
		}
		path, err := savePath()
		if err != nil {
			return err
		}
		fmt.Printf("Save file: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd, infoCmd, typesCmd, validateCmd, getCmd, setCmd, configCmd)
}
