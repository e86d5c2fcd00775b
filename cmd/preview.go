package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/abhisek/grimoire/internal/catalog"
	"github.com/abhisek/grimoire/internal/grimoire"
	"github.com/abhisek/grimoire/internal/logging"
	"github.com/abhisek/grimoire/internal/progress"
	"github.com/abhisek/grimoire/internal/tutorial"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a generated tutorial for a skill (no database)",
	Long: `Generate a tutorial for one skill path and work through its quest tasks.

This is a stateless developer tool: no request log and no TUI.
Useful for evaluating tutorial quality against a provider or model.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("skill", "python", "Skill kind: python, management or speaker")
	previewCmd.Flags().Bool("follow-up", false, "Use the follow-up topic instead of the initial one")
	previewCmd.Flags().String("topic", "", "Custom topic (overrides --follow-up)")
	previewCmd.Flags().Bool("raw", false, "Print the narrative without markdown rendering")
}

func runPreview(cmd *cobra.Command, args []string) error {
	skillVal, _ := cmd.Flags().GetString("skill")
	followUp, _ := cmd.Flags().GetBool("follow-up")
	topic, _ := cmd.Flags().GetString("topic")
	raw, _ := cmd.Flags().GetBool("raw")

	kind, err := catalog.ParseKind(skillVal)
	if err != nil {
		return err
	}
	skill, _ := catalog.Lookup(kind)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if topic == "" {
		topic = cfg.Topics.Initial
		if followUp {
			topic = cfg.Topics.FollowUp
		}
	}

	// No request log for previews.
	ctx := context.Background()
	provider, err := buildProvider(ctx, cfg, nil, logging.Nop())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	fmt.Printf("Skill: %s %s (%s)\n", skill.Icon, skill.FantasyName, skill.Name)
	fmt.Printf("Topic: %s\n", topic)
	fmt.Println("Inscribing...")
	fmt.Println()

	t, err := tutorial.NewService(provider, tutorial.DefaultConfig()).Generate(ctx, kind, topic)
	if err != nil {
		return fmt.Errorf("generate tutorial: %w", err)
	}

	fmt.Printf("── %s [%s] ──\n", t.Title, t.Difficulty)
	fmt.Println(renderNarrative(t.Content, raw))

	levels := progress.Default()
	done := make([]bool, len(t.Tasks))
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println("Quests:")
		for i, task := range t.Tasks {
			mark := " "
			if done[i] {
				mark = "x"
			}
			fmt.Printf("  %d) [%s] %s\n", i+1, mark, task)
		}
		fmt.Printf("%s level: %d\n", skill.Name, levels.Level(kind))

		fmt.Print("\nComplete quest # (blank to finish): ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			return nil
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			return nil
		}

		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(t.Tasks) {
			fmt.Printf("No quest %q.\n\n", answer)
			continue
		}
		done[n-1] = true
		entry, _ := levels.Increment(kind, grimoire.TaskReward)
		fmt.Printf("\033[32m+%d XP\033[0m  %s is now level %d\n\n", grimoire.TaskReward, skill.Name, entry.Level)
	}
}

// renderNarrative renders markdown for the terminal, falling back to the
// raw text when rendering fails.
func renderNarrative(content string, raw bool) string {
	if raw {
		return content
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return out
}
