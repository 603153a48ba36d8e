// Package history provides the interface for the append-only progression log
package history

//go:generate mockgen -destination=mock/mock_repository.go -package=historymock github.com/tbaillis/epic-api/internal/repositories/history Repository

import (
	"context"

	"github.com/tbaillis/epic-api/internal/entities/epic"
)

// Repository defines the interface for progression step persistence.
// The log is append-only per character; prior entries are never mutated.
type Repository interface {
	// Append records one progression step at the end of the character's log
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns the character's full step trace in recorded order
	// Returns errors.InvalidArgument for empty character IDs
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// AppendInput defines the input for recording a step
type AppendInput struct {
	Step *epic.ProgressionStep
}

// AppendOutput defines the output for recording a step
type AppendOutput struct {
	// Length is the log length after the append
	Length int64
}

// ListInput defines the input for reading the trace
type ListInput struct {
	CharacterID string
}

// ListOutput defines the output for reading the trace
type ListOutput struct {
	Steps []*epic.ProgressionStep
}
