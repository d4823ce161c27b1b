package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/edusmart/internal/achievements"
	"github.com/abhisek/edusmart/internal/quiz"
	"github.com/abhisek/edusmart/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		if days < 1 {
			return fmt.Errorf("--days must be at least 1, got %d", days)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		repo := st.EventRepo()

		snap, err := st.SnapshotRepo().Latest(ctx, cfg.UserID)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap == nil {
			fmt.Fprintf(out, "No progress recorded for %s yet.\n", cfg.UserID)
			return nil
		}
		printProgress(out, cfg.UserID, snap.Data)

		qs, err := repo.QuizStats(ctx, cfg.UserID)
		if err != nil {
			return fmt.Errorf("query quiz stats: %w", err)
		}
		printQuizStats(out, qs)

		byRarity, total, err := repo.AchievementCounts(ctx, cfg.UserID)
		if err != nil {
			return fmt.Errorf("query achievements: %w", err)
		}
		printAchievementCounts(out, byRarity, total)

		now := time.Now()
		from := now.UTC().Truncate(24*time.Hour).AddDate(0, 0, -(days - 1))
		daily, err := repo.DailyXP(ctx, cfg.UserID, from, now)
		if err != nil {
			return fmt.Errorf("query daily xp: %w", err)
		}
		printDailyXP(out, daily, from, days)
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("days", "d", 14, "Number of days in the XP chart")
}

func printProgress(w io.Writer, userID string, data store.SnapshotData) {
	fmt.Fprintf(w, "Learner %s\n", userID)
	fmt.Fprintln(w, strings.Repeat("─", 40))
	if p := data.Progress; p != nil {
		fmt.Fprintf(w, "Level %d  ·  %d XP  ·  %d XP to next level\n", p.Level, p.TotalXP, p.XPToNextLevel)
	}
	if l := data.Lessons; l != nil {
		fmt.Fprintf(w, "Lessons completed: %d\n", len(l.Completed))
	}
	if a := data.Activity; a != nil {
		fmt.Fprintf(w, "Sessions: %d  ·  Streak: %d days (best %d)\n", a.Logins, a.CurrentStreak, a.BestStreak)
	}
	fmt.Fprintln(w)
}

func printQuizStats(w io.Writer, qs store.QuizStats) {
	fmt.Fprintln(w, "Quizzes")
	fmt.Fprintln(w, strings.Repeat("─", 40))
	if qs.Attempts == 0 {
		fmt.Fprintln(w, "No quiz attempts yet.")
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintf(w, "%d attempts  ·  %d passed  ·  %d perfect  ·  avg %.0f%%\n",
		qs.Attempts, qs.Passed, qs.Perfect, qs.AverageScore)

	kinds := make([]string, 0, len(qs.ByKind))
	for k := range qs.ByKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(w, "  %-20s %4d\n", quiz.Kind(k).DisplayName(), qs.ByKind[k])
	}
	fmt.Fprintln(w)
}

func printAchievementCounts(w io.Writer, byRarity map[string]int, total int) {
	fmt.Fprintf(w, "Achievements unlocked: %d\n", total)
	fmt.Fprintln(w, strings.Repeat("─", 40))
	for _, r := range achievements.AllRarities() {
		fmt.Fprintf(w, "  %-10s %4d\n", r.DisplayName(), byRarity[string(r)])
	}
	fmt.Fprintln(w)
}

// printDailyXP renders one bar per day from from, including empty days.
func printDailyXP(w io.Writer, daily []store.DailyXPRecord, from time.Time, days int) {
	byDay := make(map[time.Time]int, len(daily))
	peak := 0
	for _, d := range daily {
		byDay[d.Day] = d.XP
		peak = max(peak, d.XP)
	}

	const barWidth = 30
	fmt.Fprintf(w, "XP per day (last %d days)\n", days)
	fmt.Fprintln(w, strings.Repeat("─", 40))
	for i := 0; i < days; i++ {
		day := from.AddDate(0, 0, i)
		xp := byDay[day]
		n := 0
		if peak > 0 {
			n = xp * barWidth / peak
		}
		fmt.Fprintf(w, "%s  %-*s %d\n", day.Format("Jan 02"), barWidth, strings.Repeat("█", n), xp)
	}
}
