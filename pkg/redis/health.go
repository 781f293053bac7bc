package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthStatus is the state reported by HealthCheck.
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthCheck pings the server with a short timeout and reports pool statistics
func HealthCheck(ctx context.Context, client *Client) RedisHealthCheck {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	details := map[string]string{
		"host":     client.config.Host,
		"port":     strconv.Itoa(client.config.Port),
		"database": strconv.Itoa(client.config.Database),
	}

	if err := client.Ping(ctx); err != nil {
		details["error"] = err.Error()
		return RedisHealthCheck{Status: StatusDown, Details: details}
	}

	stats := client.rdb.PoolStats()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	return RedisHealthCheck{Status: StatusUp, Details: details}
}
