package localstore

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/storefront"
)

// Open returns the backend selected by cfg.Storefront.LocalDriver. The redis
// backend needs client; the others ignore it.
func Open(cfg *config.Config, client *redis.Client) (storefront.KV, error) {
	sf := cfg.Storefront

	switch sf.LocalDriver {
	case "", "file":
		return NewFile(sf.LocalDir, sf.DeviceID)
	case "memory":
		return NewMemory(), nil
	case "redis":
		if client == nil {
			return nil, fmt.Errorf("local driver redis needs a redis connection")
		}
		return NewRedis(client, sf.DeviceID, sf.LocalTTL)
	default:
		return nil, fmt.Errorf("unknown local driver %q", sf.LocalDriver)
	}
}
