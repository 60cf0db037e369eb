package cache

import (
	"context"
	"fmt"
	"time"

	"tour-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis creates the Redis client used for the catalog cache and
// reconciliation notification dedup keys.
func InitRedis(config utils.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis failed: %w", err)
	}

	return client, nil
}

// ==================== KEY HELPERS ====================

// PackageListKey is the cache key for a catalog listing page
func PackageListKey(packageType, locale string, page, perPage int) string {
	if packageType == "" {
		packageType = "all"
	}
	if locale == "" {
		locale = "base"
	}
	return fmt.Sprintf("packages:%s:%s:%d:%d", packageType, locale, page, perPage)
}

// PackageListPattern matches every catalog listing key, for invalidation
const PackageListPattern = "packages:*"

// PaymentConfirmedKey dedups the booking-confirmed notification across the
// callback and IPN reconciliation channels
func PaymentConfirmedKey(trackingID string) string {
	return fmt.Sprintf("payment:confirmed:%s", trackingID)
}
