// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/edusmart/ent/lessonevent"
)

// LessonEventCreate is the builder for creating a LessonEvent entity.
type LessonEventCreate struct {
	config
	mutation *LessonEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *LessonEventCreate) SetSequence(v int64) *LessonEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *LessonEventCreate) SetUserID(v string) *LessonEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *LessonEventCreate) SetTimestamp(v time.Time) *LessonEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *LessonEventCreate) SetNillableTimestamp(v *time.Time) *LessonEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *LessonEventCreate) SetLessonID(v string) *LessonEventCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *LessonEventCreate) SetCourseID(v string) *LessonEventCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *LessonEventCreate) SetAction(v string) *LessonEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetWatchedSeconds sets the "watched_seconds" field.
func (_c *LessonEventCreate) SetWatchedSeconds(v float64) *LessonEventCreate {
	_c.mutation.SetWatchedSeconds(v)
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *LessonEventCreate) SetDurationSeconds(v float64) *LessonEventCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetAward sets the "award" field.
func (_c *LessonEventCreate) SetAward(v int) *LessonEventCreate {
	_c.mutation.SetAward(v)
	return _c
}

// SetNillableAward sets the "award" field if the given value is not nil.
func (_c *LessonEventCreate) SetNillableAward(v *int) *LessonEventCreate {
	if v != nil {
		_c.SetAward(*v)
	}
	return _c
}

// Mutation returns the LessonEventMutation object of the builder.
func (_c *LessonEventCreate) Mutation() *LessonEventMutation {
	return _c.mutation
}

// Save creates the LessonEvent in the database.
func (_c *LessonEventCreate) Save(ctx context.Context) (*LessonEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonEventCreate) SaveX(ctx context.Context) *LessonEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := lessonevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Award(); !ok {
		v := lessonevent.DefaultAward
		_c.mutation.SetAward(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "LessonEvent.sequence"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LessonEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := lessonevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LessonEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "LessonEvent.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := lessonevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "LessonEvent.course_id"`)}
	}
	if v, ok := _c.mutation.CourseID(); ok {
		if err := lessonevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.course_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "LessonEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := lessonevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WatchedSeconds(); !ok {
		return &ValidationError{Name: "watched_seconds", err: errors.New(`ent: missing required field "LessonEvent.watched_seconds"`)}
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		return &ValidationError{Name: "duration_seconds", err: errors.New(`ent: missing required field "LessonEvent.duration_seconds"`)}
	}
	if _, ok := _c.mutation.Award(); !ok {
		return &ValidationError{Name: "award", err: errors.New(`ent: missing required field "LessonEvent.award"`)}
	}
	return nil
}

func (_c *LessonEventCreate) sqlSave(ctx context.Context) (*LessonEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LessonEventCreate) createSpec() (*LessonEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonevent.Table, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(lessonevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(lessonevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(lessonevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(lessonevent.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(lessonevent.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(lessonevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.WatchedSeconds(); ok {
		_spec.SetField(lessonevent.FieldWatchedSeconds, field.TypeFloat64, value)
		_node.WatchedSeconds = value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(lessonevent.FieldDurationSeconds, field.TypeFloat64, value)
		_node.DurationSeconds = value
	}
	if value, ok := _c.mutation.Award(); ok {
		_spec.SetField(lessonevent.FieldAward, field.TypeInt, value)
		_node.Award = value
	}
	return _node, _spec
}

// LessonEventCreateBulk is the builder for creating many LessonEvent entities in bulk.
type LessonEventCreateBulk struct {
	config
	err      error
	builders []*LessonEventCreate
}

// Save creates the LessonEvent entities in the database.
func (_c *LessonEventCreateBulk) Save(ctx context.Context) ([]*LessonEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LessonEventCreateBulk) SaveX(ctx context.Context) []*LessonEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
