package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edusmart/internal/gamification/gamificationtest"
	"github.com/abhisek/edusmart/internal/store"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// resetFlags restores flag defaults that persist between executions of the
// shared command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestStudyStreak(t *testing.T) {
	now := day("2026-03-10").Add(15 * time.Hour)
	tests := []struct {
		name string
		days []store.DailyXPRecord
		want int
	}{
		{"no history", nil, 0},
		{"today only", []store.DailyXPRecord{{Day: day("2026-03-10"), XP: 20}}, 1},
		{"ends yesterday", []store.DailyXPRecord{
			{Day: day("2026-03-08"), XP: 10},
			{Day: day("2026-03-09"), XP: 10},
		}, 2},
		{"gap breaks the run", []store.DailyXPRecord{
			{Day: day("2026-03-06"), XP: 10},
			{Day: day("2026-03-08"), XP: 10},
			{Day: day("2026-03-09"), XP: 10},
			{Day: day("2026-03-10"), XP: 10},
		}, 3},
		{"stale history", []store.DailyXPRecord{{Day: day("2026-03-01"), XP: 50}}, 0},
		{"zero xp days do not count", []store.DailyXPRecord{
			{Day: day("2026-03-09"), XP: 0},
			{Day: day("2026-03-10"), XP: 5},
		}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, studyStreak(tt.days, now))
		})
	}
}

func TestPrintDailyXPIncludesEmptyDays(t *testing.T) {
	var buf bytes.Buffer
	printDailyXP(&buf, []store.DailyXPRecord{{Day: day("2026-03-02"), XP: 40}}, day("2026-03-01"), 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasSuffix(lines[2], " 0"))
	assert.Contains(t, lines[3], strings.Repeat("█", 30))
	assert.True(t, strings.HasSuffix(lines[3], " 40"))
}

func TestCatalogValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(gamificationtest.CatalogJSON), 0o644))
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"version": "1.0.0", "courses": "nope"}`), 0o644))

	out, err := execute(t, "", "catalog", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok (version 1.0.0, 1 courses, 2 lessons, 4 quizzes, 2 achievements)")

	_, err = execute(t, "", "catalog", "validate", bad)
	assert.Error(t, err)
}

func TestCatalogListUsesFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(gamificationtest.CatalogJSON), 0o644))

	out, err := execute(t, "", "catalog", "list", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "go-basics  Go Basics (beginner)")
	assert.Contains(t, out, "q-timed")
	assert.Contains(t, out, "Timed Quiz")
}

func TestStatsAndReset(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "edusmart.db")
	catalog := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(catalog, []byte(gamificationtest.CatalogJSON), 0o644))

	st, err := store.Open(db)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, st.EventRepo().AppendXPEvent(ctx, store.XPEventData{UserID: "ada", Amount: 50, Source: "lesson", SourceID: "go-intro", LevelBefore: 1, LevelAfter: 1}))
	require.NoError(t, st.SnapshotRepo().Save(ctx, &store.Snapshot{Data: store.SnapshotData{
		UserID:   "ada",
		Progress: &store.ProgressSnapshotData{TotalXP: 50, Level: 1, XPToNextLevel: 50},
		Lessons:  &store.LessonsSnapshotData{Completed: []string{"go-intro"}},
	}}))
	require.NoError(t, st.Close())

	out, err := execute(t, "", "stats", "--db", db, "--user", "ada", "--days", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Level 1  ·  50 XP")
	assert.Contains(t, out, "Lessons completed: 1")
	assert.Contains(t, out, "No quiz attempts yet.")
	assert.Contains(t, out, "XP per day (last 3 days)")

	out, err = execute(t, "", "reset", "--session", "--yes", "--db", db, "--user", "ada", "--catalog", catalog)
	require.NoError(t, err)
	assert.Contains(t, out, "XP and level reset for ada.")

	out, err = execute(t, "", "stats", "--db", db, "--user", "ada", "--days", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Level 1  ·  0 XP")
	assert.Contains(t, out, "Lessons completed: 1")

	out, err = execute(t, "no\n", "reset", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	out, err = execute(t, "reset\n", "reset", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "All progress deleted.")

	out, err = execute(t, "", "stats", "--db", db, "--user", "ada", "--days", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "No progress recorded for ada yet.")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "edusmart "))
	assert.Equal(t, 1, strings.Count(out, "\n"))

	out, err = execute(t, "", "version", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog:  v1.x")
	assert.Contains(t, out, "snapshot: v1")
}
