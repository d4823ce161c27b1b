// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/edusmart/ent/lessonevent"
	"github.com/abhisek/edusmart/ent/predicate"
)

// LessonEventUpdate is the builder for updating LessonEvent entities.
type LessonEventUpdate struct {
	config
	hooks    []Hook
	mutation *LessonEventMutation
}

// Where appends a list predicates to the LessonEventUpdate builder.
func (_u *LessonEventUpdate) Where(ps ...predicate.LessonEvent) *LessonEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *LessonEventUpdate) SetLessonID(v string) *LessonEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableLessonID(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *LessonEventUpdate) SetCourseID(v string) *LessonEventUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableCourseID(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *LessonEventUpdate) SetAction(v string) *LessonEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableAction(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetWatchedSeconds sets the "watched_seconds" field.
func (_u *LessonEventUpdate) SetWatchedSeconds(v float64) *LessonEventUpdate {
	_u.mutation.ResetWatchedSeconds()
	_u.mutation.SetWatchedSeconds(v)
	return _u
}

// SetNillableWatchedSeconds sets the "watched_seconds" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableWatchedSeconds(v *float64) *LessonEventUpdate {
	if v != nil {
		_u.SetWatchedSeconds(*v)
	}
	return _u
}

// AddWatchedSeconds adds value to the "watched_seconds" field.
func (_u *LessonEventUpdate) AddWatchedSeconds(v float64) *LessonEventUpdate {
	_u.mutation.AddWatchedSeconds(v)
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *LessonEventUpdate) SetDurationSeconds(v float64) *LessonEventUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableDurationSeconds(v *float64) *LessonEventUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *LessonEventUpdate) AddDurationSeconds(v float64) *LessonEventUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetAward sets the "award" field.
func (_u *LessonEventUpdate) SetAward(v int) *LessonEventUpdate {
	_u.mutation.ResetAward()
	_u.mutation.SetAward(v)
	return _u
}

// SetNillableAward sets the "award" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableAward(v *int) *LessonEventUpdate {
	if v != nil {
		_u.SetAward(*v)
	}
	return _u
}

// AddAward adds value to the "award" field.
func (_u *LessonEventUpdate) AddAward(v int) *LessonEventUpdate {
	_u.mutation.AddAward(v)
	return _u
}

// Mutation returns the LessonEventMutation object of the builder.
func (_u *LessonEventUpdate) Mutation() *LessonEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonEventUpdate) check() error {
	if v, ok := _u.mutation.LessonID(); ok {
		if err := lessonevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := lessonevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := lessonevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(lessonevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(lessonevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(lessonevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.WatchedSeconds(); ok {
		_spec.SetField(lessonevent.FieldWatchedSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWatchedSeconds(); ok {
		_spec.AddField(lessonevent.FieldWatchedSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(lessonevent.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(lessonevent.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Award(); ok {
		_spec.SetField(lessonevent.FieldAward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAward(); ok {
		_spec.AddField(lessonevent.FieldAward, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonEventUpdateOne is the builder for updating a single LessonEvent entity.
type LessonEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonEventMutation
}

// SetLessonID sets the "lesson_id" field.
func (_u *LessonEventUpdateOne) SetLessonID(v string) *LessonEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableLessonID(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *LessonEventUpdateOne) SetCourseID(v string) *LessonEventUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableCourseID(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *LessonEventUpdateOne) SetAction(v string) *LessonEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableAction(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetWatchedSeconds sets the "watched_seconds" field.
func (_u *LessonEventUpdateOne) SetWatchedSeconds(v float64) *LessonEventUpdateOne {
	_u.mutation.ResetWatchedSeconds()
	_u.mutation.SetWatchedSeconds(v)
	return _u
}

// SetNillableWatchedSeconds sets the "watched_seconds" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableWatchedSeconds(v *float64) *LessonEventUpdateOne {
	if v != nil {
		_u.SetWatchedSeconds(*v)
	}
	return _u
}

// AddWatchedSeconds adds value to the "watched_seconds" field.
func (_u *LessonEventUpdateOne) AddWatchedSeconds(v float64) *LessonEventUpdateOne {
	_u.mutation.AddWatchedSeconds(v)
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *LessonEventUpdateOne) SetDurationSeconds(v float64) *LessonEventUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableDurationSeconds(v *float64) *LessonEventUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *LessonEventUpdateOne) AddDurationSeconds(v float64) *LessonEventUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetAward sets the "award" field.
func (_u *LessonEventUpdateOne) SetAward(v int) *LessonEventUpdateOne {
	_u.mutation.ResetAward()
	_u.mutation.SetAward(v)
	return _u
}

// SetNillableAward sets the "award" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableAward(v *int) *LessonEventUpdateOne {
	if v != nil {
		_u.SetAward(*v)
	}
	return _u
}

// AddAward adds value to the "award" field.
func (_u *LessonEventUpdateOne) AddAward(v int) *LessonEventUpdateOne {
	_u.mutation.AddAward(v)
	return _u
}

// Mutation returns the LessonEventMutation object of the builder.
func (_u *LessonEventUpdateOne) Mutation() *LessonEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonEventUpdate builder.
func (_u *LessonEventUpdateOne) Where(ps ...predicate.LessonEvent) *LessonEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonEventUpdateOne) Select(field string, fields ...string) *LessonEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonEvent entity.
func (_u *LessonEventUpdateOne) Save(ctx context.Context) (*LessonEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonEventUpdateOne) SaveX(ctx context.Context) *LessonEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonEventUpdateOne) check() error {
	if v, ok := _u.mutation.LessonID(); ok {
		if err := lessonevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := lessonevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := lessonevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonEventUpdateOne) sqlSave(ctx context.Context) (_node *LessonEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonevent.FieldID)
		for _, f := range fields {
			if !lessonevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(lessonevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(lessonevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(lessonevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.WatchedSeconds(); ok {
		_spec.SetField(lessonevent.FieldWatchedSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWatchedSeconds(); ok {
		_spec.AddField(lessonevent.FieldWatchedSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(lessonevent.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(lessonevent.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Award(); ok {
		_spec.SetField(lessonevent.FieldAward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAward(); ok {
		_spec.AddField(lessonevent.FieldAward, field.TypeInt, value)
	}
	_node = &LessonEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
