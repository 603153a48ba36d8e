package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tbaillis/epic-api/internal/errors"
	"github.com/tbaillis/epic-api/internal/pkg/clock"
	"github.com/tbaillis/epic-api/internal/repositories/character"
	"github.com/tbaillis/epic-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    character.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	var err error
	s.repo, err = character.NewRedis(&character.RedisConfig{
		Client: client,
		Clock:  clock.NewFixed(time.Unix(1700000000, 0)),
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	snapshot := testutils.NewEpicFighter("char-001")

	created, err := s.repo.Create(s.ctx, character.CreateInput{Snapshot: snapshot})
	s.Require().NoError(err)
	s.Equal(int64(1700000000), created.Snapshot.CreatedAt)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char-001"})
	s.Require().NoError(err)
	s.Equal(snapshot.Name, got.Snapshot.Name)
	s.Equal(snapshot.Level, got.Snapshot.Level)
	s.Equal(snapshot.AbilityScores, got.Snapshot.AbilityScores)
}

func (s *RedisRepositoryTestSuite) TestCreate_Duplicate() {
	snapshot := testutils.NewEpicFighter("char-001")

	_, err := s.repo.Create(s.ctx, character.CreateInput{Snapshot: snapshot})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{Snapshot: snapshot})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "nope"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	snapshot := testutils.NewEpicFighter("char-001")
	_, err := s.repo.Create(s.ctx, character.CreateInput{Snapshot: snapshot})
	s.Require().NoError(err)

	snapshot.Level = 22
	snapshot.HitPoints += 10
	_, err = s.repo.Update(s.ctx, character.UpdateInput{Snapshot: snapshot})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char-001"})
	s.Require().NoError(err)
	s.Equal(int32(22), got.Snapshot.Level)
}

func (s *RedisRepositoryTestSuite) TestUpdate_NotFound() {
	snapshot := testutils.NewEpicFighter("ghost")
	_, err := s.repo.Update(s.ctx, character.UpdateInput{Snapshot: snapshot})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete_CleansPlayerIndex() {
	snapshot := testutils.NewEpicFighter("char-001")
	_, err := s.repo.Create(s.ctx, character.CreateInput{Snapshot: snapshot})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char-001"})
	s.Require().NoError(err)

	listed, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: snapshot.PlayerID})
	s.Require().NoError(err)
	s.Empty(listed.Snapshots)
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID() {
	first := testutils.NewEpicFighter("char-001")
	second := testutils.NewEpicFighter("char-002")

	_, err := s.repo.Create(s.ctx, character.CreateInput{Snapshot: first})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, character.CreateInput{Snapshot: second})
	s.Require().NoError(err)

	listed, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: first.PlayerID})
	s.Require().NoError(err)
	s.Len(listed.Snapshots, 2)
}

func (s *RedisRepositoryTestSuite) TestAcquireLock_SecondCallAborts() {
	_, err := s.repo.AcquireLock(s.ctx, character.AcquireLockInput{CharacterID: "char-001"})
	s.Require().NoError(err)

	_, err = s.repo.AcquireLock(s.ctx, character.AcquireLockInput{CharacterID: "char-001"})
	s.Require().Error(err)
	s.Equal(errors.CodeAborted, errors.GetCode(err))

	_, err = s.repo.ReleaseLock(s.ctx, character.ReleaseLockInput{CharacterID: "char-001"})
	s.Require().NoError(err)

	_, err = s.repo.AcquireLock(s.ctx, character.AcquireLockInput{CharacterID: "char-001"})
	s.Require().NoError(err)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
