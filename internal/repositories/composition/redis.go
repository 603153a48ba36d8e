package composition

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/tbaillis/epic-api/internal/errors"
	"github.com/tbaillis/epic-api/internal/pkg/clock"
	redisclient "github.com/tbaillis/epic-api/internal/redis"
	"github.com/tbaillis/epic-api/internal/rulebook/seeds"
)

const (
	compositionKeyPrefix = "epic:composition:"
	fingerprintPrefix    = "epic:composition:fp:"
	casterIndexPrefix    = "epic:composition:caster:"

	// Error messages
	errCompositionNil     = "composition cannot be nil"
	errCompositionIDEmpty = "composition ID cannot be empty"
	errCasterIDEmpty      = "caster ID cannot be empty"
	errFingerprintEmpty   = "fingerprint cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis composition repository.
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

// NewRedis creates a new Redis-backed composition repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

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
	if input.Composition == nil {
		return nil, errors.InvalidArgument(errCompositionNil)
	}
	if input.Composition.ID == "" {
		return nil, errors.InvalidArgument(errCompositionIDEmpty)
	}
	if input.Composition.CasterID == "" {
		return nil, errors.InvalidArgument(errCasterIDEmpty)
	}

	key := compositionKeyPrefix + input.Composition.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("composition with ID %s already exists", input.Composition.ID)
	}

	input.Composition.CreatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Composition)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal composition")
	}

	fingerprint := seeds.Fingerprint(input.Composition.SeedIDs, input.Composition.Modifiers)

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.Set(ctx, fingerprintKey(input.Composition.CasterID, fingerprint), input.Composition.ID, 0)
	pipe.SAdd(ctx, casterIndexPrefix+input.Composition.CasterID, input.Composition.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create composition")
	}

	return &CreateOutput{Composition: input.Composition}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCompositionIDEmpty)
	}

	comp, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Composition: comp}, nil
}

func (r *redisRepository) GetByFingerprint(ctx context.Context, input GetByFingerprintInput) (*GetByFingerprintOutput, error) {
	if input.CasterID == "" {
		return nil, errors.InvalidArgument(errCasterIDEmpty)
	}
	if input.Fingerprint == "" {
		return nil, errors.InvalidArgument(errFingerprintEmpty)
	}

	id, err := r.client.Get(ctx, fingerprintKey(input.CasterID, input.Fingerprint)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no composition with fingerprint %s for caster %s", input.Fingerprint, input.CasterID)
		}
		return nil, errors.Wrapf(err, "failed to resolve fingerprint")
	}

	comp, err := r.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &GetByFingerprintOutput{Composition: comp}, nil
}

func (r *redisRepository) ListByCasterID(ctx context.Context, input ListByCasterIDInput) (*ListByCasterIDOutput, error) {
	if input.CasterID == "" {
		return nil, errors.InvalidArgument(errCasterIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, casterIndexPrefix+input.CasterID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list compositions")
	}

	compositions := make([]*seeds.Composition, 0, len(ids))
	for _, id := range ids {
		comp, err := r.get(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				// Stale index entry
				continue
			}
			return nil, err
		}
		compositions = append(compositions, comp)
	}

	return &ListByCasterIDOutput{Compositions: compositions}, nil
}

func (r *redisRepository) get(ctx context.Context, id string) (*seeds.Composition, error) {
	result, err := r.client.Get(ctx, compositionKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("composition with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get composition")
	}

	var comp seeds.Composition
	if err := json.Unmarshal([]byte(result), &comp); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal composition")
	}
	return &comp, nil
}

func fingerprintKey(casterID, fingerprint string) string {
	return fingerprintPrefix + casterID + ":" + fingerprint
}
