// Code generated by ent, DO NOT EDIT.

package achievementevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the achievementevent type in the database.
	Label = "achievement_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAchievementID holds the string denoting the achievement_id field in the database.
	FieldAchievementID = "achievement_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldRarity holds the string denoting the rarity field in the database.
	FieldRarity = "rarity"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldReward holds the string denoting the reward field in the database.
	FieldReward = "reward"
	// Table holds the table name of the achievementevent in the database.
	Table = "achievement_events"
)

// Columns holds all SQL columns for achievementevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldUserID,
	FieldTimestamp,
	FieldAchievementID,
	FieldName,
	FieldRarity,
	FieldCategory,
	FieldReward,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// AchievementIDValidator is a validator for the "achievement_id" field. It is called by the builders before save.
	AchievementIDValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// RarityValidator is a validator for the "rarity" field. It is called by the builders before save.
	RarityValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// RewardValidator is a validator for the "reward" field. It is called by the builders before save.
	RewardValidator func(int) error
)

// OrderOption defines the ordering options for the AchievementEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByAchievementID orders the results by the achievement_id field.
func ByAchievementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAchievementID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByRarity orders the results by the rarity field.
func ByRarity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRarity, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByReward orders the results by the reward field.
func ByReward(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReward, opts...).ToFunc()
}
