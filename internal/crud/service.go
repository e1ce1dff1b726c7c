// Package crud implements the read-modify-write update protocol shared by
// every entity service: load the row, apply the patch field by field, persist
// the merged row as a whole. Entity-specific behavior is limited to the
// patch's Apply rules and an optional create-time validator.
package crud

import "context"

// Store is the per-entity persistence contract. Get returns (nil, nil) for a
// missing row; Delete reports whether a row existed. Insert assigns identity
// and createdAt, Update refreshes updatedAt.
type Store[E any] interface {
	List(ctx context.Context) ([]E, error)
	Get(ctx context.Context, id string) (*E, error)
	Insert(ctx context.Context, e *E) error
	Update(ctx context.Context, e *E) error
	Delete(ctx context.Context, id string) (bool, error)
}

// Patch applies its present fields to an entity and leaves the rest alone.
type Patch[E any] interface {
	Apply(*E)
}

type Service[E any, P Patch[E]] struct {
	store    Store[E]
	validate func(*E) error
}

// NewService builds an entity service. validate runs before any write on
// create and may also normalize defaults; pass nil for entities without
// create-time rules.
func NewService[E any, P Patch[E]](store Store[E], validate func(*E) error) *Service[E, P] {
	return &Service[E, P]{store: store, validate: validate}
}

func (s *Service[E, P]) List(ctx context.Context) ([]E, error) {
	return s.store.List(ctx)
}

// Get returns (nil, nil) when no row exists; the boundary layer decides how
// absence surfaces.
func (s *Service[E, P]) Get(ctx context.Context, id string) (*E, error) {
	return s.store.Get(ctx, id)
}

func (s *Service[E, P]) Create(ctx context.Context, e *E) (*E, error) {
	if s.validate != nil {
		if err := s.validate(e); err != nil {
			return nil, err
		}
	}
	if err := s.store.Insert(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update loads the stored row, merges the patch into it and persists the
// result. Returns (nil, nil) when the id is unknown. Two concurrent updates
// of the same row race read-modify-write; the later write wins.
func (s *Service[E, P]) Update(ctx context.Context, id string, patch P) (*E, error) {
	e, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	patch.Apply(e)
	if err := s.store.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service[E, P]) Delete(ctx context.Context, id string) (bool, error) {
	return s.store.Delete(ctx, id)
}
