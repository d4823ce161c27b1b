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
	"github.com/abhisek/edusmart/ent/xpevent"
)

// XPEventUpdate is the builder for updating XPEvent entities.
type XPEventUpdate struct {
	config
	hooks    []Hook
	mutation *XPEventMutation
}

// Where appends a list predicates to the XPEventUpdate builder.
func (_u *XPEventUpdate) Where(ps ...predicate.XPEvent) *XPEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSource sets the "source" field.
func (_u *XPEventUpdate) SetSource(v string) *XPEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *XPEventUpdate) SetNillableSource(v *string) *XPEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *XPEventUpdate) SetSourceID(v string) *XPEventUpdate {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *XPEventUpdate) SetNillableSourceID(v *string) *XPEventUpdate {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *XPEventUpdate) SetAmount(v int) *XPEventUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *XPEventUpdate) SetNillableAmount(v *int) *XPEventUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *XPEventUpdate) AddAmount(v int) *XPEventUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetTotalAfter sets the "total_after" field.
func (_u *XPEventUpdate) SetTotalAfter(v int) *XPEventUpdate {
	_u.mutation.ResetTotalAfter()
	_u.mutation.SetTotalAfter(v)
	return _u
}

// SetNillableTotalAfter sets the "total_after" field if the given value is not nil.
func (_u *XPEventUpdate) SetNillableTotalAfter(v *int) *XPEventUpdate {
	if v != nil {
		_u.SetTotalAfter(*v)
	}
	return _u
}

// AddTotalAfter adds value to the "total_after" field.
func (_u *XPEventUpdate) AddTotalAfter(v int) *XPEventUpdate {
	_u.mutation.AddTotalAfter(v)
	return _u
}

// SetLevelBefore sets the "level_before" field.
func (_u *XPEventUpdate) SetLevelBefore(v int) *XPEventUpdate {
	_u.mutation.ResetLevelBefore()
	_u.mutation.SetLevelBefore(v)
	return _u
}

// SetNillableLevelBefore sets the "level_before" field if the given value is not nil.
func (_u *XPEventUpdate) SetNillableLevelBefore(v *int) *XPEventUpdate {
	if v != nil {
		_u.SetLevelBefore(*v)
	}
	return _u
}

// AddLevelBefore adds value to the "level_before" field.
func (_u *XPEventUpdate) AddLevelBefore(v int) *XPEventUpdate {
	_u.mutation.AddLevelBefore(v)
	return _u
}

// SetLevelAfter sets the "level_after" field.
func (_u *XPEventUpdate) SetLevelAfter(v int) *XPEventUpdate {
	_u.mutation.ResetLevelAfter()
	_u.mutation.SetLevelAfter(v)
	return _u
}

// SetNillableLevelAfter sets the "level_after" field if the given value is not nil.
func (_u *XPEventUpdate) SetNillableLevelAfter(v *int) *XPEventUpdate {
	if v != nil {
		_u.SetLevelAfter(*v)
	}
	return _u
}

// AddLevelAfter adds value to the "level_after" field.
func (_u *XPEventUpdate) AddLevelAfter(v int) *XPEventUpdate {
	_u.mutation.AddLevelAfter(v)
	return _u
}

// Mutation returns the XPEventMutation object of the builder.
func (_u *XPEventUpdate) Mutation() *XPEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *XPEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *XPEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *XPEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *XPEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *XPEventUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := xpevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "XPEvent.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := xpevent.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "XPEvent.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAfter(); ok {
		if err := xpevent.TotalAfterValidator(v); err != nil {
			return &ValidationError{Name: "total_after", err: fmt.Errorf(`ent: validator failed for field "XPEvent.total_after": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LevelBefore(); ok {
		if err := xpevent.LevelBeforeValidator(v); err != nil {
			return &ValidationError{Name: "level_before", err: fmt.Errorf(`ent: validator failed for field "XPEvent.level_before": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LevelAfter(); ok {
		if err := xpevent.LevelAfterValidator(v); err != nil {
			return &ValidationError{Name: "level_after", err: fmt.Errorf(`ent: validator failed for field "XPEvent.level_after": %w`, err)}
		}
	}
	return nil
}

func (_u *XPEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(xpevent.Table, xpevent.Columns, sqlgraph.NewFieldSpec(xpevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(xpevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(xpevent.FieldSourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(xpevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(xpevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAfter(); ok {
		_spec.SetField(xpevent.FieldTotalAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAfter(); ok {
		_spec.AddField(xpevent.FieldTotalAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelBefore(); ok {
		_spec.SetField(xpevent.FieldLevelBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelBefore(); ok {
		_spec.AddField(xpevent.FieldLevelBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelAfter(); ok {
		_spec.SetField(xpevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelAfter(); ok {
		_spec.AddField(xpevent.FieldLevelAfter, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{xpevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// XPEventUpdateOne is the builder for updating a single XPEvent entity.
type XPEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *XPEventMutation
}

// SetSource sets the "source" field.
func (_u *XPEventUpdateOne) SetSource(v string) *XPEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *XPEventUpdateOne) SetNillableSource(v *string) *XPEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *XPEventUpdateOne) SetSourceID(v string) *XPEventUpdateOne {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *XPEventUpdateOne) SetNillableSourceID(v *string) *XPEventUpdateOne {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *XPEventUpdateOne) SetAmount(v int) *XPEventUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *XPEventUpdateOne) SetNillableAmount(v *int) *XPEventUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *XPEventUpdateOne) AddAmount(v int) *XPEventUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetTotalAfter sets the "total_after" field.
func (_u *XPEventUpdateOne) SetTotalAfter(v int) *XPEventUpdateOne {
	_u.mutation.ResetTotalAfter()
	_u.mutation.SetTotalAfter(v)
	return _u
}

// SetNillableTotalAfter sets the "total_after" field if the given value is not nil.
func (_u *XPEventUpdateOne) SetNillableTotalAfter(v *int) *XPEventUpdateOne {
	if v != nil {
		_u.SetTotalAfter(*v)
	}
	return _u
}

// AddTotalAfter adds value to the "total_after" field.
func (_u *XPEventUpdateOne) AddTotalAfter(v int) *XPEventUpdateOne {
	_u.mutation.AddTotalAfter(v)
	return _u
}

// SetLevelBefore sets the "level_before" field.
func (_u *XPEventUpdateOne) SetLevelBefore(v int) *XPEventUpdateOne {
	_u.mutation.ResetLevelBefore()
	_u.mutation.SetLevelBefore(v)
	return _u
}

// SetNillableLevelBefore sets the "level_before" field if the given value is not nil.
func (_u *XPEventUpdateOne) SetNillableLevelBefore(v *int) *XPEventUpdateOne {
	if v != nil {
		_u.SetLevelBefore(*v)
	}
	return _u
}

// AddLevelBefore adds value to the "level_before" field.
func (_u *XPEventUpdateOne) AddLevelBefore(v int) *XPEventUpdateOne {
	_u.mutation.AddLevelBefore(v)
	return _u
}

// SetLevelAfter sets the "level_after" field.
func (_u *XPEventUpdateOne) SetLevelAfter(v int) *XPEventUpdateOne {
	_u.mutation.ResetLevelAfter()
	_u.mutation.SetLevelAfter(v)
	return _u
}

// SetNillableLevelAfter sets the "level_after" field if the given value is not nil.
func (_u *XPEventUpdateOne) SetNillableLevelAfter(v *int) *XPEventUpdateOne {
	if v != nil {
		_u.SetLevelAfter(*v)
	}
	return _u
}

// AddLevelAfter adds value to the "level_after" field.
func (_u *XPEventUpdateOne) AddLevelAfter(v int) *XPEventUpdateOne {
	_u.mutation.AddLevelAfter(v)
	return _u
}

// Mutation returns the XPEventMutation object of the builder.
func (_u *XPEventUpdateOne) Mutation() *XPEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the XPEventUpdate builder.
func (_u *XPEventUpdateOne) Where(ps ...predicate.XPEvent) *XPEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *XPEventUpdateOne) Select(field string, fields ...string) *XPEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated XPEvent entity.
func (_u *XPEventUpdateOne) Save(ctx context.Context) (*XPEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *XPEventUpdateOne) SaveX(ctx context.Context) *XPEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *XPEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *XPEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *XPEventUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := xpevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "XPEvent.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := xpevent.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "XPEvent.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAfter(); ok {
		if err := xpevent.TotalAfterValidator(v); err != nil {
			return &ValidationError{Name: "total_after", err: fmt.Errorf(`ent: validator failed for field "XPEvent.total_after": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LevelBefore(); ok {
		if err := xpevent.LevelBeforeValidator(v); err != nil {
			return &ValidationError{Name: "level_before", err: fmt.Errorf(`ent: validator failed for field "XPEvent.level_before": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LevelAfter(); ok {
		if err := xpevent.LevelAfterValidator(v); err != nil {
			return &ValidationError{Name: "level_after", err: fmt.Errorf(`ent: validator failed for field "XPEvent.level_after": %w`, err)}
		}
	}
	return nil
}

func (_u *XPEventUpdateOne) sqlSave(ctx context.Context) (_node *XPEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(xpevent.Table, xpevent.Columns, sqlgraph.NewFieldSpec(xpevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "XPEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, xpevent.FieldID)
		for _, f := range fields {
			if !xpevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != xpevent.FieldID {
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
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(xpevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(xpevent.FieldSourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(xpevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(xpevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAfter(); ok {
		_spec.SetField(xpevent.FieldTotalAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAfter(); ok {
		_spec.AddField(xpevent.FieldTotalAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelBefore(); ok {
		_spec.SetField(xpevent.FieldLevelBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelBefore(); ok {
		_spec.AddField(xpevent.FieldLevelBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelAfter(); ok {
		_spec.SetField(xpevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelAfter(); ok {
		_spec.AddField(xpevent.FieldLevelAfter, field.TypeInt, value)
	}
	_node = &XPEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{xpevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
