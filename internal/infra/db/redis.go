package db

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis はRedisに接続してクライアントを返す。
// セッションカートの保存先として使う。
func ConnectRedis() (*redis.Client, error) {
	addr := getenv("REDIS_ADDR", "localhost:6379")
	pass := getenv("REDIS_PASSWORD", "")

	dbNum := 0
	if v := getenv("REDIS_DB", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		dbNum = n
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       dbNum,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
