// Package composition provides persistence for developed epic spell
// compositions. Compositions are looked up by ID when cast, and by
// fingerprint during development so repeated development of the same
// seed and modifier set returns the original record.
package composition

import (
	"context"

	"github.com/tbaillis/epic-api/internal/rulebook/seeds"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=compositionmock github.com/tbaillis/epic-api/internal/repositories/composition Repository

// Repository defines the interface for composition persistence
type Repository interface {
	// Create stores a new composition and indexes it by fingerprint
	// and caster
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a composition by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetByFingerprint retrieves a caster's composition for a seed and
	// modifier set, if one was developed
	GetByFingerprint(ctx context.Context, input GetByFingerprintInput) (*GetByFingerprintOutput, error)

	// ListByCasterID retrieves all compositions developed by a caster
	ListByCasterID(ctx context.Context, input ListByCasterIDInput) (*ListByCasterIDOutput, error)
}

// CreateInput defines the input for storing a composition
type CreateInput struct {
	Composition *seeds.Composition
}

// CreateOutput defines the output for storing a composition
type CreateOutput struct {
	Composition *seeds.Composition
}

// GetInput defines the input for retrieving a composition
type GetInput struct {
	ID string
}

// GetOutput defines the output for retrieving a composition
type GetOutput struct {
	Composition *seeds.Composition
}

// GetByFingerprintInput defines the input for the fingerprint lookup
type GetByFingerprintInput struct {
	CasterID    string
	Fingerprint string
}

// GetByFingerprintOutput defines the output for the fingerprint lookup
type GetByFingerprintOutput struct {
	Composition *seeds.Composition
}

// ListByCasterIDInput defines the input for listing a caster's compositions
type ListByCasterIDInput struct {
	CasterID string
}

// ListByCasterIDOutput defines the output for listing a caster's compositions
type ListByCasterIDOutput struct {
	Compositions []*seeds.Composition
}
