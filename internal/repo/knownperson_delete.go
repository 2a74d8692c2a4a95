// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sumit1004/neurolink_backend/internal/repo/knownperson"
	"github.com/sumit1004/neurolink_backend/internal/repo/predicate"
)

// KnownPersonDelete is the builder for deleting a KnownPerson entity.
type KnownPersonDelete struct {
	config
	hooks    []Hook
	mutation *KnownPersonMutation
}

// Where appends a list predicates to the KnownPersonDelete builder.
func (_d *KnownPersonDelete) Where(ps ...predicate.KnownPerson) *KnownPersonDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *KnownPersonDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *KnownPersonDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *KnownPersonDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(knownperson.Table, sqlgraph.NewFieldSpec(knownperson.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// KnownPersonDeleteOne is the builder for deleting a single KnownPerson entity.
type KnownPersonDeleteOne struct {
	_d *KnownPersonDelete
}

// Where appends a list predicates to the KnownPersonDelete builder.
func (_d *KnownPersonDeleteOne) Where(ps ...predicate.KnownPerson) *KnownPersonDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *KnownPersonDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{knownperson.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *KnownPersonDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
