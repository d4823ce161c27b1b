// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/edusmart/ent/achievementevent"
)

// AchievementEvent is the model entity for the AchievementEvent schema.
type AchievementEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global append order across all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// Learner the event belongs to
	UserID string `json:"user_id,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// AchievementID holds the value of the "achievement_id" field.
	AchievementID string `json:"achievement_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Rarity holds the value of the "rarity" field.
	Rarity string `json:"rarity,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Reward holds the value of the "reward" field.
	Reward       int `json:"reward,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AchievementEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case achievementevent.FieldID, achievementevent.FieldSequence, achievementevent.FieldReward:
			values[i] = new(sql.NullInt64)
		case achievementevent.FieldUserID, achievementevent.FieldAchievementID, achievementevent.FieldName, achievementevent.FieldRarity, achievementevent.FieldCategory:
			values[i] = new(sql.NullString)
		case achievementevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AchievementEvent fields.
func (_m *AchievementEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case achievementevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case achievementevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case achievementevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case achievementevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case achievementevent.FieldAchievementID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field achievement_id", values[i])
			} else if value.Valid {
				_m.AchievementID = value.String
			}
		case achievementevent.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case achievementevent.FieldRarity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rarity", values[i])
			} else if value.Valid {
				_m.Rarity = value.String
			}
		case achievementevent.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case achievementevent.FieldReward:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reward", values[i])
			} else if value.Valid {
				_m.Reward = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AchievementEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AchievementEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AchievementEvent.
// Note that you need to call AchievementEvent.Unwrap() before calling this method if this AchievementEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AchievementEvent) Update() *AchievementEventUpdateOne {
	return NewAchievementEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AchievementEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AchievementEvent) Unwrap() *AchievementEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AchievementEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AchievementEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AchievementEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("achievement_id=")
	builder.WriteString(_m.AchievementID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("rarity=")
	builder.WriteString(_m.Rarity)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("reward=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reward))
	builder.WriteByte(')')
	return builder.String()
}

// AchievementEvents is a parsable slice of AchievementEvent.
type AchievementEvents []*AchievementEvent
