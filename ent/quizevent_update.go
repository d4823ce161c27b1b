// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/edusmart/ent/predicate"
	"github.com/abhisek/edusmart/ent/quizevent"
)

// QuizEventUpdate is the builder for updating QuizEvent entities.
type QuizEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizEventMutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdate) Where(ps ...predicate.QuizEvent) *QuizEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *QuizEventUpdate) SetAttemptID(v string) *QuizEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableAttemptID(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizEventUpdate) SetQuizID(v string) *QuizEventUpdate {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableQuizID(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *QuizEventUpdate) SetKind(v string) *QuizEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableKind(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *QuizEventUpdate) SetCorrectCount(v int) *QuizEventUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableCorrectCount(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *QuizEventUpdate) AddCorrectCount(v int) *QuizEventUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *QuizEventUpdate) SetTotal(v int) *QuizEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableTotal(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *QuizEventUpdate) AddTotal(v int) *QuizEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizEventUpdate) SetScore(v int) *QuizEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableScore(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizEventUpdate) AddScore(v int) *QuizEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *QuizEventUpdate) SetPassed(v bool) *QuizEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillablePassed(v *bool) *QuizEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetAward sets the "award" field.
func (_u *QuizEventUpdate) SetAward(v int) *QuizEventUpdate {
	_u.mutation.ResetAward()
	_u.mutation.SetAward(v)
	return _u
}

// SetNillableAward sets the "award" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableAward(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetAward(*v)
	}
	return _u
}

// AddAward adds value to the "award" field.
func (_u *QuizEventUpdate) AddAward(v int) *QuizEventUpdate {
	_u.mutation.AddAward(v)
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *QuizEventUpdate) SetElapsedMs(v int64) *QuizEventUpdate {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableElapsedMs(v *int64) *QuizEventUpdate {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *QuizEventUpdate) AddElapsedMs(v int64) *QuizEventUpdate {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdate) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := quizevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizID(); ok {
		if err := quizevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.quiz_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := quizevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(quizevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(quizevent.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(quizevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(quizevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(quizevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(quizevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(quizevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(quizevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Award(); ok {
		_spec.SetField(quizevent.FieldAward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAward(); ok {
		_spec.AddField(quizevent.FieldAward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(quizevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(quizevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizEventUpdateOne is the builder for updating a single QuizEvent entity.
type QuizEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *QuizEventUpdateOne) SetAttemptID(v string) *QuizEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableAttemptID(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizEventUpdateOne) SetQuizID(v string) *QuizEventUpdateOne {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableQuizID(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *QuizEventUpdateOne) SetKind(v string) *QuizEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableKind(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *QuizEventUpdateOne) SetCorrectCount(v int) *QuizEventUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableCorrectCount(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *QuizEventUpdateOne) AddCorrectCount(v int) *QuizEventUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *QuizEventUpdateOne) SetTotal(v int) *QuizEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableTotal(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *QuizEventUpdateOne) AddTotal(v int) *QuizEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizEventUpdateOne) SetScore(v int) *QuizEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableScore(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizEventUpdateOne) AddScore(v int) *QuizEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *QuizEventUpdateOne) SetPassed(v bool) *QuizEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillablePassed(v *bool) *QuizEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetAward sets the "award" field.
func (_u *QuizEventUpdateOne) SetAward(v int) *QuizEventUpdateOne {
	_u.mutation.ResetAward()
	_u.mutation.SetAward(v)
	return _u
}

// SetNillableAward sets the "award" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableAward(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetAward(*v)
	}
	return _u
}

// AddAward adds value to the "award" field.
func (_u *QuizEventUpdateOne) AddAward(v int) *QuizEventUpdateOne {
	_u.mutation.AddAward(v)
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *QuizEventUpdateOne) SetElapsedMs(v int64) *QuizEventUpdateOne {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableElapsedMs(v *int64) *QuizEventUpdateOne {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *QuizEventUpdateOne) AddElapsedMs(v int64) *QuizEventUpdateOne {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdateOne) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdateOne) Where(ps ...predicate.QuizEvent) *QuizEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizEventUpdateOne) Select(field string, fields ...string) *QuizEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizEvent entity.
func (_u *QuizEventUpdateOne) Save(ctx context.Context) (*QuizEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdateOne) SaveX(ctx context.Context) *QuizEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := quizevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizID(); ok {
		if err := quizevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.quiz_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := quizevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizevent.FieldID)
		for _, f := range fields {
			if !quizevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizevent.FieldID {
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
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(quizevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(quizevent.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(quizevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(quizevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(quizevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(quizevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(quizevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(quizevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Award(); ok {
		_spec.SetField(quizevent.FieldAward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAward(); ok {
		_spec.AddField(quizevent.FieldAward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(quizevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(quizevent.FieldElapsedMs, field.TypeInt64, value)
	}
	_node = &QuizEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
