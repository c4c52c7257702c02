package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"clearview_estimator/internal/domain/entities"
	"clearview_estimator/internal/domain/quote"
	"clearview_estimator/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "estimator:session:"

	updateRetries    = 4
	updateRetryDelay = 10 * time.Millisecond
)

// RedisSessionStore keeps estimator sessions as JSON values with a TTL.
// Every save or update refreshes the TTL.
type RedisSessionStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

var _ interfaces.ISessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(client redis.UniversalClient, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Save(ctx context.Context, sess quote.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.client.Set(ctx, key(sess.QuoteID), data, s.ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, quoteID string) (*quote.Session, error) {
	data, err := s.client.Get(ctx, key(quoteID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return decode(data)
}

// Update runs fn inside WATCH/MULTI on the session key. A concurrent write
// aborts the transaction and fn is replayed on the fresh value.
func (s *RedisSessionStore) Update(ctx context.Context, quoteID string, fn func(sess *quote.Session) error) (*quote.Session, error) {
	k := key(quoteID)

	var updated *quote.Session
	txf := func(tx *redis.Tx) error {
		updated = nil

		data, err := tx.Get(ctx, k).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil
			}
			return fmt.Errorf("get session: %w", err)
		}
		sess, err := decode(data)
		if err != nil {
			return err
		}
		if err := fn(sess); err != nil {
			return err
		}

		payload, err := json.Marshal(sess)
		if err != nil {
			return fmt.Errorf("marshal session: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, payload, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		updated = sess
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(updateRetryDelay), updateRetries), ctx)
	err := backoff.Retry(func() error {
		err := s.client.Watch(ctx, txf, k)
		if err == nil || errors.Is(err, redis.TxFailedErr) {
			return err
		}
		return backoff.Permanent(err)
	}, policy)
	if errors.Is(err, redis.TxFailedErr) {
		return nil, fmt.Errorf("%w: %s", quote.ErrSessionConflict, quoteID)
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, quoteID string) error {
	return s.client.Del(ctx, key(quoteID)).Err()
}

func decode(data []byte) (*quote.Session, error) {
	var sess quote.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	if sess.State.AddOns == nil {
		sess.State.AddOns = []entities.SelectedService{}
	}
	return &sess, nil
}

func key(quoteID string) string {
	return keyPrefix + quoteID
}
