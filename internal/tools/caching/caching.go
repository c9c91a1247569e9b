package caching

import (
	"bytes"
	"compress/flate"
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cacher stores JSON-encoded values deflate-compressed in redis. A failed
// fetch (missing key, broken payload, dead redis) reads as a miss so the
// caller always falls back to the origin.
type Cacher struct {
	redis *redis.Client
}

func NewRedisCache(redisClient *redis.Client) *Cacher {
	return &Cacher{
		redis: redisClient,
	}
}

func (c *Cacher) Store(ctx context.Context, key string, value any, ttl time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	compressed, err := deflate(encoded)
	if err != nil {
		return err
	}

	return c.redis.SetEx(ctx, key, compressed, ttl).Err()
}

func (c *Cacher) Fetch(ctx context.Context, key string, destination any) bool {
	compressed, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	uncompressed, err := inflate(compressed)
	if err != nil {
		return false
	}

	return json.Unmarshal(uncompressed, destination) == nil
}

func deflate(uncompressed []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer, _ := flate.NewWriter(&buffer, flate.BestSpeed)

	if _, err := writer.Write(uncompressed); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func inflate(compressed []byte) ([]byte, error) {
	reader := flate.NewReader(bytes.NewReader(compressed))
	defer reader.Close()

	var out bytes.Buffer
	if _, err := out.ReadFrom(reader); err != nil {
		return []byte{}, err
	}

	return out.Bytes(), nil
}
