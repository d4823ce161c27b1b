package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/edusmart/internal/content"
	"github.com/abhisek/edusmart/internal/logger"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect course catalogs",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the courses, lessons and quizzes in the active catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cfg, logger.Nop())
		if err != nil {
			return err
		}
		printCatalog(cmd.OutOrStdout(), cat)
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a catalog JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := content.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (version %s, %d courses, %d lessons, %d quizzes, %d achievements)\n",
			args[0], cat.Version, len(cat.Courses), cat.LessonCount(), cat.QuizCount(), len(cat.Achievements))
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}

func printCatalog(w io.Writer, cat *content.Catalog) {
	for _, c := range cat.Courses {
		fmt.Fprintf(w, "%s  %s (%s)\n", c.ID, c.Title, c.Difficulty)
		for _, l := range c.Lessons {
			fmt.Fprintf(w, "  %-24s  %-36s  %5s  %4d XP\n", l.ID, truncate(l.Title, 36), formatSeconds(l.DurationSeconds), l.XPReward)
			for _, q := range l.Quizzes {
				fmt.Fprintf(w, "    %-22s  %-20s  %4d XP\n", q.Quiz.QuizID(), q.Quiz.Kind().DisplayName(), q.Quiz.Reward())
			}
		}
	}
	fmt.Fprintln(w, strings.Repeat("─", 72))
	fmt.Fprintf(w, "%d courses, %d lessons, %d quizzes, %d achievements\n",
		len(cat.Courses), cat.LessonCount(), cat.QuizCount(), len(cat.Achievements))
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func formatSeconds(sec float64) string {
	total := int(sec)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
