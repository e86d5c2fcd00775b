package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/grimoire/internal/catalog"
	"github.com/abhisek/grimoire/internal/progress"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the skill catalog",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skill paths with their starting levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		levels := progress.Default()

		fmt.Printf("%-12s  %-18s  %-38s  %5s\n", "Kind", "Name", "Path", "Level")
		fmt.Println(strings.Repeat("─", 80))

		for _, s := range catalog.All() {
			fmt.Printf("%-12s  %-18s  %-38s  %5d\n",
				s.Kind, s.Name, truncate(s.FantasyName, 38), levels.Level(s.Kind))
		}

		fmt.Printf("\n%d skills\n", len(catalog.All()))
		return nil
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <kind>",
	Short: "Show the lore of one skill path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := catalog.ParseKind(args[0])
		if err != nil {
			return err
		}
		s, _ := catalog.Lookup(kind)

		fmt.Printf("%s  %s\n", s.Icon, s.FantasyName)
		fmt.Printf("Name:  %s\n", s.Name)
		fmt.Printf("Kind:  %s\n\n", s.Kind)
		fmt.Println(s.Description)
		fmt.Println()
		fmt.Println(s.Lore)
		return nil
	},
}

func init() {
	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
}
