package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/edusmart/internal/app"
	"github.com/abhisek/edusmart/internal/config"
	"github.com/abhisek/edusmart/internal/gamification"
	"github.com/abhisek/edusmart/internal/logger"
	"github.com/abhisek/edusmart/internal/progress"
	"github.com/abhisek/edusmart/internal/store"
)

// streakWindow bounds how far back the study streak is computed.
const streakWindow = 366 * 24 * time.Hour

// runApp opens the store, restores the learner, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogMode, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	feed := app.NewFeed(0)
	eventRepo := st.EventRepo()
	engine, saver, err := buildEngine(ctx, cfg, st, log, gamification.WithNotifier(feed))
	if err != nil {
		return err
	}

	now := time.Now()
	if _, err := engine.RecordLogin(ctx, now); err != nil {
		log.Warn("record login", "error", err)
	}
	if err := syncStreak(ctx, engine, eventRepo, cfg.UserID, now); err != nil {
		log.Warn("record streak", "error", err)
	}

	skip, _ := cmd.Flags().GetBool("skip-welcome")
	runErr := app.Run(app.Options{
		Engine:        engine,
		EventRepo:     eventRepo,
		Feed:          feed,
		Logger:        log,
		PlaybackSpeed: cfg.PlaybackSpeed,
		SkipWelcome:   skip,
	})

	// Keep the lesson cursor for the next run.
	engine.SuspendLesson()
	saver.save(engine.Snapshot())
	return runErr
}

// buildEngine creates the learner's engine over the configured catalog and
// restores their latest snapshot. Every state change is saved back to st.
func buildEngine(ctx context.Context, cfg config.Config, st *store.Store, log *logger.Logger, extra ...gamification.Option) (*gamification.Engine, *snapshotSaver, error) {
	cat, err := loadCatalog(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	saver := &snapshotSaver{store: st, keep: cfg.SnapshotKeep, log: log}
	opts := []gamification.Option{
		gamification.WithUserID(cfg.UserID),
		gamification.WithEventRepo(st.EventRepo()),
		gamification.WithLogger(log),
		gamification.WithSnapshotHook(saver.save),
	}
	engine, err := gamification.New(
		progress.NewStore(progress.CurveByName(cfg.LevelCurve, cfg.LevelBase, cfg.LevelFactor)),
		cat,
		append(opts, extra...)...,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create engine: %w", err)
	}

	if err := restoreLatest(ctx, engine, st.SnapshotRepo(), cfg.UserID); err != nil {
		return nil, nil, err
	}
	return engine, saver, nil
}

// restoreLatest loads the learner's most recent snapshot into engine.
func restoreLatest(ctx context.Context, engine *gamification.Engine, repo store.SnapshotRepo, userID string) error {
	snap, err := repo.Latest(ctx, userID)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return nil
	}
	if err := engine.Restore(snap.Data); err != nil {
		return fmt.Errorf("restore snapshot %d: %w", snap.ID, err)
	}
	return nil
}

// syncStreak records the current run of consecutive days with earned XP.
func syncStreak(ctx context.Context, engine *gamification.Engine, repo store.EventRepo, userID string, now time.Time) error {
	days, err := repo.DailyXP(ctx, userID, now.Add(-streakWindow), now)
	if err != nil {
		return err
	}
	streak := studyStreak(days, now)
	if streak == engine.Activity().CurrentStreak {
		return nil
	}
	_, err = engine.RecordStreak(ctx, streak)
	return err
}

// studyStreak counts consecutive UTC days with XP ending today, or ending
// yesterday when nothing was earned yet today.
func studyStreak(days []store.DailyXPRecord, now time.Time) int {
	earned := make(map[time.Time]bool, len(days))
	for _, d := range days {
		if d.XP > 0 {
			earned[d.Day.UTC().Truncate(24*time.Hour)] = true
		}
	}

	day := now.UTC().Truncate(24 * time.Hour)
	if !earned[day] {
		day = day.Add(-24 * time.Hour)
	}
	streak := 0
	for earned[day] {
		streak++
		day = day.Add(-24 * time.Hour)
	}
	return streak
}

// snapshotSaver persists engine snapshots and prunes old ones.
type snapshotSaver struct {
	store *store.Store
	keep  int
	log   *logger.Logger
}

func (s *snapshotSaver) save(data store.SnapshotData) {
	ctx := context.Background()
	seq, err := s.store.Sequence(ctx)
	if err != nil {
		s.log.Warn("read sequence", "error", err)
	}
	repo := s.store.SnapshotRepo()
	if err := repo.Save(ctx, &store.Snapshot{Sequence: seq, Data: data}); err != nil {
		s.log.Warn("save snapshot", "error", err)
		return
	}
	if err := repo.Prune(ctx, data.UserID, s.keep); err != nil {
		s.log.Warn("prune snapshots", "error", err)
	}
}
