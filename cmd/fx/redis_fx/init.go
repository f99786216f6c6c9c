package redis_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"wellspring/internal/infra"
)

var Module = fx.Provide(provideRedis)

// provideRedis may return nil; consumers treat a nil client as
// cache disabled.
func provideRedis() *redis.Client {
	return infra.InitRedis()
}
