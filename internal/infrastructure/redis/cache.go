// Package redis implementa o cache da aplicação sobre Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoreiradev/fardamento-api/internal/application/usecase"
)

var _ usecase.Cache = (*Cache)(nil)

// Cache cliente Redis que satisfaz o contrato usecase.Cache.
type Cache struct {
	rdb *redis.Client
}

// New conecta ao Redis e valida a conexão com PING.
func New(addr string) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Cache{rdb: rdb}, nil
}

// Get recupera o valor de uma chave; string vazia em cache miss.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set grava um valor com tempo de expiração.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.rdb.Set(ctx, key, value, expiration).Err()
}

// Close encerra o cliente.
func (c *Cache) Close() error {
	return c.rdb.Close()
}
