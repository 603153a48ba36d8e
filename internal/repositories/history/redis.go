package history

import (
	"context"
	"encoding/json"

	"github.com/tbaillis/epic-api/internal/entities/epic"
	"github.com/tbaillis/epic-api/internal/errors"
	redisclient "github.com/tbaillis/epic-api/internal/redis"
)

const logKeyPrefix = "epic:progression:log:"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis history repository.
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a new Redis-backed history repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.Step == nil {
		return nil, errors.InvalidArgument("step cannot be nil")
	}
	if input.Step.CharacterID == "" {
		return nil, errors.InvalidArgument("step character ID cannot be empty")
	}

	data, err := json.Marshal(input.Step)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal step")
	}

	length, err := r.client.RPush(ctx, logKeyPrefix+input.Step.CharacterID, data).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to append step")
	}

	return &AppendOutput{Length: length}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	entries, err := r.client.LRange(ctx, logKeyPrefix+input.CharacterID, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read step log")
	}

	steps := make([]*epic.ProgressionStep, 0, len(entries))
	for _, entry := range entries {
		var step epic.ProgressionStep
		if err := json.Unmarshal([]byte(entry), &step); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal step")
		}
		steps = append(steps, &step)
	}

	return &ListOutput{Steps: steps}, nil
}
