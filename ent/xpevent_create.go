// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/edusmart/ent/xpevent"
)

// XPEventCreate is the builder for creating a XPEvent entity.
type XPEventCreate struct {
	config
	mutation *XPEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *XPEventCreate) SetSequence(v int64) *XPEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *XPEventCreate) SetUserID(v string) *XPEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *XPEventCreate) SetTimestamp(v time.Time) *XPEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *XPEventCreate) SetNillableTimestamp(v *time.Time) *XPEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *XPEventCreate) SetSource(v string) *XPEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *XPEventCreate) SetSourceID(v string) *XPEventCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *XPEventCreate) SetAmount(v int) *XPEventCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetTotalAfter sets the "total_after" field.
func (_c *XPEventCreate) SetTotalAfter(v int) *XPEventCreate {
	_c.mutation.SetTotalAfter(v)
	return _c
}

// SetLevelBefore sets the "level_before" field.
func (_c *XPEventCreate) SetLevelBefore(v int) *XPEventCreate {
	_c.mutation.SetLevelBefore(v)
	return _c
}

// SetLevelAfter sets the "level_after" field.
func (_c *XPEventCreate) SetLevelAfter(v int) *XPEventCreate {
	_c.mutation.SetLevelAfter(v)
	return _c
}

// Mutation returns the XPEventMutation object of the builder.
func (_c *XPEventCreate) Mutation() *XPEventMutation {
	return _c.mutation
}

// Save creates the XPEvent in the database.
func (_c *XPEventCreate) Save(ctx context.Context) (*XPEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *XPEventCreate) SaveX(ctx context.Context) *XPEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *XPEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *XPEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *XPEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := xpevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *XPEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "XPEvent.sequence"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "XPEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := xpevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "XPEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "XPEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "XPEvent.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := xpevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "XPEvent.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "XPEvent.source_id"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "XPEvent.amount"`)}
	}
	if v, ok := _c.mutation.Amount(); ok {
		if err := xpevent.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "XPEvent.amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalAfter(); !ok {
		return &ValidationError{Name: "total_after", err: errors.New(`ent: missing required field "XPEvent.total_after"`)}
	}
	if v, ok := _c.mutation.TotalAfter(); ok {
		if err := xpevent.TotalAfterValidator(v); err != nil {
			return &ValidationError{Name: "total_after", err: fmt.Errorf(`ent: validator failed for field "XPEvent.total_after": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LevelBefore(); !ok {
		return &ValidationError{Name: "level_before", err: errors.New(`ent: missing required field "XPEvent.level_before"`)}
	}
	if v, ok := _c.mutation.LevelBefore(); ok {
		if err := xpevent.LevelBeforeValidator(v); err != nil {
			return &ValidationError{Name: "level_before", err: fmt.Errorf(`ent: validator failed for field "XPEvent.level_before": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LevelAfter(); !ok {
		return &ValidationError{Name: "level_after", err: errors.New(`ent: missing required field "XPEvent.level_after"`)}
	}
	if v, ok := _c.mutation.LevelAfter(); ok {
		if err := xpevent.LevelAfterValidator(v); err != nil {
			return &ValidationError{Name: "level_after", err: fmt.Errorf(`ent: validator failed for field "XPEvent.level_after": %w`, err)}
		}
	}
	return nil
}

func (_c *XPEventCreate) sqlSave(ctx context.Context) (*XPEvent, error) {
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

func (_c *XPEventCreate) createSpec() (*XPEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &XPEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(xpevent.Table, sqlgraph.NewFieldSpec(xpevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(xpevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(xpevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(xpevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(xpevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(xpevent.FieldSourceID, field.TypeString, value)
		_node.SourceID = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(xpevent.FieldAmount, field.TypeInt, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.TotalAfter(); ok {
		_spec.SetField(xpevent.FieldTotalAfter, field.TypeInt, value)
		_node.TotalAfter = value
	}
	if value, ok := _c.mutation.LevelBefore(); ok {
		_spec.SetField(xpevent.FieldLevelBefore, field.TypeInt, value)
		_node.LevelBefore = value
	}
	if value, ok := _c.mutation.LevelAfter(); ok {
		_spec.SetField(xpevent.FieldLevelAfter, field.TypeInt, value)
		_node.LevelAfter = value
	}
	return _node, _spec
}

// XPEventCreateBulk is the builder for creating many XPEvent entities in bulk.
type XPEventCreateBulk struct {
	config
	err      error
	builders []*XPEventCreate
}

// Save creates the XPEvent entities in the database.
func (_c *XPEventCreateBulk) Save(ctx context.Context) ([]*XPEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*XPEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*XPEventMutation)
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
func (_c *XPEventCreateBulk) SaveX(ctx context.Context) []*XPEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *XPEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *XPEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
