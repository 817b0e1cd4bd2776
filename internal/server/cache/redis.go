package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/logging"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
	"github.com/redis/go-redis/v9"
)

// Redis keeps lists as JSON under "liftlog:workouts:<user id>" and the
// user's version counter under "liftlog:workouts:<user id>:version".
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	log    logging.Logger
}

func NewRedis(client *redis.Client, ttl time.Duration, log logging.Logger) *Redis {
	if log == nil {
		log = logging.Nop{}
	}
	return &Redis{client: client, ttl: ttl, log: log}
}

// NewRedisClient connects to addr and verifies the connection.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 0})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

func key(userID int64) string {
	return fmt.Sprintf("liftlog:workouts:%d", userID)
}

func versionKey(userID int64) string {
	return key(userID) + ":version"
}

var errStaleVersion = errors.New("cache version changed")

func (r *Redis) Get(ctx context.Context, userID int64) ([]models.Workout, bool) {
	b, err := r.client.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Warn(ctx, "cache get failed", "user_id", userID, "error", err)
		}
		return nil, false
	}

	var list []models.Workout
	if err := json.Unmarshal(b, &list); err != nil {
		r.log.Warn(ctx, "cache entry unreadable", "user_id", userID, "error", err)
		r.Invalidate(ctx, userID)
		return nil, false
	}
	if list == nil {
		list = []models.Workout{}
	}
	return list, true
}

// Version returns 0 when the counter is missing or unreadable.
func (r *Redis) Version(ctx context.Context, userID int64) uint64 {
	v, err := r.client.Get(ctx, versionKey(userID)).Uint64()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Warn(ctx, "cache version read failed", "user_id", userID, "error", err)
		}
		return 0
	}
	return v
}

// Set writes list under WATCH on the version key, so a concurrent
// Invalidate aborts the write.
func (r *Redis) Set(ctx context.Context, userID int64, version uint64, list []models.Workout) {
	b, err := json.Marshal(list)
	if err != nil {
		r.log.Warn(ctx, "cache encode failed", "user_id", userID, "error", err)
		return
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey(userID)).Uint64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleVersion
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key(userID), b, r.ttl)
			return nil
		})
		return err
	}, versionKey(userID))

	switch {
	case err == nil:
	case errors.Is(err, errStaleVersion), errors.Is(err, redis.TxFailedErr):
		r.log.Debug(ctx, "stale cache write skipped", "user_id", userID)
	default:
		r.log.Warn(ctx, "cache set failed", "user_id", userID, "error", err)
	}
}

func (r *Redis) Invalidate(ctx context.Context, userID int64) {
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, versionKey(userID))
		p.Del(ctx, key(userID))
		return nil
	})
	if err != nil {
		r.log.Warn(ctx, "cache invalidate failed", "user_id", userID, "error", err)
	}
}
