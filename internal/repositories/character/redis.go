package character

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/tbaillis/epic-api/internal/entities/epic"
	"github.com/tbaillis/epic-api/internal/errors"
	"github.com/tbaillis/epic-api/internal/pkg/clock"
	redisclient "github.com/tbaillis/epic-api/internal/redis"
)

const (
	characterKeyPrefix = "epic:character:"
	playerIndexPrefix  = "epic:character:player:"
	lockKeyPrefix      = "epic:character:lock:"

	defaultLockTTL = 30 * time.Second

	// Error messages
	errSnapshotNil      = "snapshot cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errPlayerIDEmpty    = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument(errSnapshotNil)
	}
	if input.Snapshot.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKeyPrefix + input.Snapshot.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Snapshot.ID)
	}

	input.Snapshot.CreatedAt = r.clock.Now().Unix()
	input.Snapshot.UpdatedAt = input.Snapshot.CreatedAt

	data, err := json.Marshal(input.Snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal snapshot")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // No TTL for characters
	if input.Snapshot.PlayerID != "" {
		pipe.SAdd(ctx, playerIndexPrefix+input.Snapshot.PlayerID, input.Snapshot.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Snapshot: input.Snapshot}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, characterKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var snapshot epic.CharacterSnapshot
	if err := json.Unmarshal([]byte(result), &snapshot); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal snapshot")
	}

	return &GetOutput{Snapshot: &snapshot}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument(errSnapshotNil)
	}
	if input.Snapshot.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKeyPrefix + input.Snapshot.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.Snapshot.ID)
	}

	input.Snapshot.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal snapshot")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{Snapshot: input.Snapshot}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	// Load first so the player index can be cleaned up
	existing, err := r.Get(ctx, GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKeyPrefix+input.ID)
	if existing.Snapshot.PlayerID != "" {
		pipe.SRem(ctx, playerIndexPrefix+existing.Snapshot.PlayerID, input.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, playerIndexPrefix+input.PlayerID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list player characters")
	}

	snapshots := make([]*epic.CharacterSnapshot, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				// Stale index entry; skip rather than fail the listing
				continue
			}
			return nil, err
		}
		snapshots = append(snapshots, out.Snapshot)
	}

	return &ListByPlayerIDOutput{Snapshots: snapshots}, nil
}

func (r *redisRepository) AcquireLock(ctx context.Context, input AcquireLockInput) (*AcquireLockOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = defaultLockTTL
	}

	acquired, err := r.client.SetNX(ctx, lockKeyPrefix+input.CharacterID, "locked", ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to acquire lock")
	}
	if !acquired {
		return nil, errors.Abortedf("advancement already in flight for character %s", input.CharacterID)
	}

	return &AcquireLockOutput{}, nil
}

func (r *redisRepository) ReleaseLock(ctx context.Context, input ReleaseLockInput) (*ReleaseLockOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	if err := r.client.Del(ctx, lockKeyPrefix+input.CharacterID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to release lock")
	}

	return &ReleaseLockOutput{}, nil
}
