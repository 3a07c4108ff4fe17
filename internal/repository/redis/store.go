// Package redis provides a Redis/Valkey implementation of the reservation store
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/campustools/roomsense/internal/config"
	"github.com/campustools/roomsense/internal/models"
	"github.com/campustools/roomsense/internal/repository"
	"github.com/redis/go-redis/v9"
)

// Store implements the reservation store with Redis storage
type Store struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewStore creates a new Redis reservation store
func NewStore(cfg config.RedisConfig) (*Store, error) {
	var client *redis.Client

	// Use URI if provided, otherwise build connection from individual parameters
	if cfg.URI != "" {
		opt, err := redis.ParseURL(cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URI: %w", err)
		}

		if opt.DB == 0 {
			opt.DB = cfg.DB
		}
		if opt.Password == "" && cfg.Password != "" {
			opt.Password = cfg.Password
		}

		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Store{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		ttl:       cfg.ReservationTTL,
	}, nil
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// reservationKey returns the Redis key for a room's reservation
func (s *Store) reservationKey(roomID string) string {
	return fmt.Sprintf("%sreservations:%s", s.keyPrefix, roomID)
}

// Get returns the reservation for a room
func (s *Store) Get(ctx context.Context, roomID string) (*models.Reservation, error) {
	data, err := s.client.Get(ctx, s.reservationKey(roomID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	var res models.Reservation
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reservation: %w", err)
	}

	return &res, nil
}

// Set stores the reservation under its room key
func (s *Store) Set(ctx context.Context, roomID string, res *models.Reservation) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal reservation: %w", err)
	}

	if err := s.client.Set(ctx, s.reservationKey(roomID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save reservation: %w", err)
	}

	return nil
}

// Remove deletes the reservation for a room
func (s *Store) Remove(ctx context.Context, roomID string) error {
	deleted, err := s.client.Del(ctx, s.reservationKey(roomID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	if deleted == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// ClearAll removes every reservation under the key prefix
func (s *Store) ClearAll(ctx context.Context) error {
	pattern := s.reservationKey("*")
	keys, err := s.client.Keys(ctx, pattern).Result()
	if err != nil {
		return fmt.Errorf("failed to list reservations: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear reservations: %w", err)
	}

	return nil
}
