package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/edusmart/ent"
	"github.com/abhisek/edusmart/ent/snapshot"
)

// ErrSnapshotTooNew is returned for snapshots written by a newer layout.
var ErrSnapshotTooNew = errors.New("snapshot layout is newer than supported")

type snapshotRepo struct {
	client *ent.Client
}

// newestFirst orders a learner's snapshots by the event they cover, then by
// insertion for snapshots taken without new events in between.
var newestFirst = []snapshot.OrderOption{
	ent.Desc(snapshot.FieldSequence),
	ent.Desc(snapshot.FieldID),
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	if snap.Data.UserID == "" {
		return errors.New("save snapshot: missing user id")
	}
	if snap.Data.Version == 0 {
		snap.Data.Version = SnapshotVersion
	}
	raw, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	create := r.client.Snapshot.Create().
		SetUserID(snap.Data.UserID).
		SetSequence(snap.Sequence).
		SetVersion(snap.Data.Version).
		SetData(raw)
	if !snap.Timestamp.IsZero() {
		create.SetTimestamp(snap.Timestamp.UTC())
	}
	row, err := create.Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	snap.ID, snap.Timestamp = row.ID, row.Timestamp
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, userID string) (*Snapshot, error) {
	row, err := r.client.Snapshot.Query().
		Where(snapshot.UserID(userID)).
		Order(newestFirst...).
		First(ctx)
	switch {
	case ent.IsNotFound(err):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("latest snapshot: %w", err)
	}
	return decodeSnapshot(row)
}

func (r *snapshotRepo) Prune(ctx context.Context, userID string, keep int) error {
	stale, err := r.client.Snapshot.Query().
		Where(snapshot.UserID(userID)).
		Order(newestFirst...).
		Offset(max(keep, 0)).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("list stale snapshots: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}
	if _, err := r.client.Snapshot.Delete().Where(snapshot.IDIn(stale...)).Exec(ctx); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func decodeSnapshot(row *ent.Snapshot) (*Snapshot, error) {
	if row.Version > SnapshotVersion {
		return nil, fmt.Errorf("snapshot %d: version %d: %w", row.ID, row.Version, ErrSnapshotTooNew)
	}
	var data SnapshotData
	if err := json.Unmarshal(row.Data, &data); err != nil {
		return nil, fmt.Errorf("decode snapshot %d: %w", row.ID, err)
	}
	data.Version = row.Version
	if data.UserID == "" {
		data.UserID = row.UserID
	}
	return &Snapshot{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		Data:      data,
	}, nil
}
