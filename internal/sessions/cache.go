package sessions

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cefr-platform/backend/internal/models"
)

const cacheTTL = 30 * time.Minute

// Cache is a best-effort Redis front for session lookups. Every method
// tolerates an unavailable Redis: misses and errors just send the caller to
// Postgres. A nil *Cache is valid and disables caching entirely.
type Cache struct {
	client *redis.Client
}

// NewCache connects to Redis at addr. An empty addr returns nil, which the
// service treats as caching disabled.
func NewCache(addr, password string) *Cache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("WARN: redis unavailable at %s, session caching disabled: %v", addr, err)
		return nil
	}
	return &Cache{client: client}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (c *Cache) Get(ctx context.Context, sessionID string) (*models.TestSession, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		return nil, false
	}
	var sess models.TestSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, false
	}
	return &sess, true
}

func (c *Cache) Set(ctx context.Context, sess *models.TestSession) {
	if c == nil || sess == nil {
		return
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, sessionKey(sess.SessionID), data, cacheTTL).Err(); err != nil {
		log.Printf("WARN: failed to cache session %s: %v", sess.SessionID, err)
	}
}

func (c *Cache) Invalidate(ctx context.Context, sessionID string) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		log.Printf("WARN: failed to invalidate session %s: %v", sessionID, err)
	}
}
