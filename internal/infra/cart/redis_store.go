package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"github.com/redis/go-redis/v9"
)

// カートの保持期間。触るたびに延長する
const cartTTL = 14 * 24 * time.Hour

// RedisCartStore はセッションIDごとのカートをRedisに保存する。
// 値は product_id→数量 のJSONオブジェクト。
type RedisCartStore struct {
	client *redis.Client
}

func NewRedisCartStore(client *redis.Client) repo.CartStore {
	return &RedisCartStore{client: client}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (s *RedisCartStore) load(ctx context.Context, sessionID string) (map[string]int64, error) {
	raw, err := s.client.Get(ctx, cartKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return map[string]int64{}, nil
	}
	if err != nil {
		return nil, err
	}

	m := map[string]int64{}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		// 壊れたカートは空扱いにする
		return map[string]int64{}, nil
	}
	return m, nil
}

func (s *RedisCartStore) save(ctx context.Context, sessionID string, m map[string]int64) error {
	if len(m) == 0 {
		return s.client.Del(ctx, cartKey(sessionID)).Err()
	}
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(sessionID), b, cartTTL).Err()
}

func (s *RedisCartStore) Lines(ctx context.Context, sessionID string) ([]model.CartLine, error) {
	m, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lines := make([]model.CartLine, 0, len(m))
	for k, qty := range m {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil || qty <= 0 {
			continue
		}
		lines = append(lines, model.CartLine{ProductID: id, Quantity: qty})
	}

	// JSONオブジェクトは順序を持たないので表示用に安定させる
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })
	return lines, nil
}

func (s *RedisCartStore) SetLine(ctx context.Context, sessionID string, productID int64, qty int64) error {
	m, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	m[strconv.FormatInt(productID, 10)] = qty
	return s.save(ctx, sessionID, m)
}

func (s *RedisCartStore) RemoveLine(ctx context.Context, sessionID string, productID int64) error {
	m, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	delete(m, strconv.FormatInt(productID, 10))
	return s.save(ctx, sessionID, m)
}

func (s *RedisCartStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKey(sessionID)).Err()
}
