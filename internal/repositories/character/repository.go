// Package character provides the interface for character snapshot persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/tbaillis/epic-api/internal/repositories/character Repository

import (
	"context"
	"time"

	"github.com/tbaillis/epic-api/internal/entities/epic"
)

// Repository defines the interface for character snapshot persistence.
// The snapshot is the one piece of shared mutable state in the core;
// advancement holds the per-character lock while reading and writing it.
type Repository interface {
	// Create creates a new character snapshot
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a snapshot with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a snapshot by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the snapshot doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update overwrites an existing snapshot
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the snapshot doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a snapshot by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the snapshot doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID retrieves all snapshots for a player
	// Returns errors.InvalidArgument for empty player IDs
	// Returns errors.Internal for storage failures
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)

	// AcquireLock takes the per-character advancement lock. Exactly one
	// in-flight advancement per character is permitted.
	// Returns errors.Aborted if another advancement holds the lock
	// Returns errors.Internal for storage failures
	AcquireLock(ctx context.Context, input AcquireLockInput) (*AcquireLockOutput, error)

	// ReleaseLock releases the per-character advancement lock. Releasing
	// a lock that is not held is not an error.
	ReleaseLock(ctx context.Context, input ReleaseLockInput) (*ReleaseLockOutput, error)
}

// CreateInput defines the input for creating a snapshot
type CreateInput struct {
	Snapshot *epic.CharacterSnapshot
}

// CreateOutput defines the output for creating a snapshot
type CreateOutput struct {
	Snapshot *epic.CharacterSnapshot
}

// GetInput defines the input for getting a snapshot
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a snapshot
type GetOutput struct {
	Snapshot *epic.CharacterSnapshot
}

// UpdateInput defines the input for updating a snapshot
type UpdateInput struct {
	Snapshot *epic.CharacterSnapshot
}

// UpdateOutput defines the output for updating a snapshot
type UpdateOutput struct {
	Snapshot *epic.CharacterSnapshot
}

// DeleteInput defines the input for deleting a snapshot
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a snapshot
type DeleteOutput struct{}

// ListByPlayerIDInput defines the input for listing snapshots by player
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing snapshots by player
type ListByPlayerIDOutput struct {
	Snapshots []*epic.CharacterSnapshot
}

// AcquireLockInput defines the input for taking the advancement lock
type AcquireLockInput struct {
	CharacterID string
	TTL         time.Duration
}

// AcquireLockOutput defines the output for taking the advancement lock
type AcquireLockOutput struct{}

// ReleaseLockInput defines the input for releasing the advancement lock
type ReleaseLockInput struct {
	CharacterID string
}

// ReleaseLockOutput defines the output for releasing the advancement lock
type ReleaseLockOutput struct{}
