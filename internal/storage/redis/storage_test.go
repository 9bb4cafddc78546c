package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/tvasilyev/rosterbook/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestLoadRosterEmpty() {
	_, err := s.storage.LoadRoster(s.ctx)
	s.ErrorIs(err, model.ErrRosterNotFound)
}

func (s *StorageSuite) TestSaveAndLoadRoster() {
	roster := model.Roster{
		{ID: "123", Nickname: "PlayerOne", Comments: []model.Comment{}},
		{ID: "456", Nickname: "NoobMaster", Comments: []model.Comment{
			{ID: 99, Text: "keeps feeding mid", Author: "bob"},
		}},
	}

	err := s.storage.SaveRoster(s.ctx, roster)
	s.Require().NoError(err)

	loaded, err := s.storage.LoadRoster(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(loaded, 2)
	s.Equal(model.PlayerID("123"), loaded[0].ID)
	s.Equal("NoobMaster", loaded[1].Nickname)
	s.Equal("keeps feeding mid", loaded[1].Comments[0].Text)
}

func (s *StorageSuite) TestSaveRosterOverwrites() {
	_ = s.storage.SaveRoster(s.ctx, model.Roster{{ID: "1", Nickname: "Old"}})
	_ = s.storage.SaveRoster(s.ctx, model.Roster{{ID: "2", Nickname: "New"}})

	loaded, err := s.storage.LoadRoster(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(loaded, 1)
	s.Equal(model.PlayerID("2"), loaded[0].ID)
}

func (s *StorageSuite) TestLoadRosterMalformed() {
	s.Require().NoError(s.mini.Set(rosterKey(), "not json"))

	_, err := s.storage.LoadRoster(s.ctx)
	s.Error(err)
	s.NotErrorIs(err, model.ErrRosterNotFound)
}

func (s *StorageSuite) TestLoadUsernameEmpty() {
	_, err := s.storage.LoadUsername(s.ctx)
	s.ErrorIs(err, model.ErrUsernameNotFound)
}

func (s *StorageSuite) TestSaveAndLoadUsername() {
	err := s.storage.SaveUsername(s.ctx, "alice")
	s.Require().NoError(err)

	username, err := s.storage.LoadUsername(s.ctx)
	s.Require().NoError(err)
	s.Equal("alice", username)
}

func (s *StorageSuite) TestKeysAreIndependent() {
	_ = s.storage.SaveUsername(s.ctx, "alice")

	_, err := s.storage.LoadRoster(s.ctx)
	s.ErrorIs(err, model.ErrRosterNotFound)
}
