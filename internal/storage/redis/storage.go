package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tvasilyev/rosterbook/internal/model"
	"github.com/tvasilyev/rosterbook/internal/storage"
)

// Storage is a Redis-backed implementation of the record store.
// The whole roster lives under a single key as one JSON document;
// the username is stored independently under its own key.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis record store
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis record store with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.RecordStore = (*Storage)(nil)

func (s *Storage) LoadRoster(ctx context.Context) (model.Roster, error) {
	data, err := s.client.Get(ctx, rosterKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRosterNotFound
		}
		return nil, err
	}

	var roster model.Roster
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, err
	}
	return roster, nil
}

func (s *Storage) SaveRoster(ctx context.Context, roster model.Roster) error {
	data, err := json.Marshal(roster)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, rosterKey(), data, 0).Err()
}

func (s *Storage) LoadUsername(ctx context.Context) (string, error) {
	username, err := s.client.Get(ctx, usernameKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrUsernameNotFound
		}
		return "", err
	}
	return username, nil
}

func (s *Storage) SaveUsername(ctx context.Context, username string) error {
	return s.client.Set(ctx, usernameKey(), username, 0).Err()
}
