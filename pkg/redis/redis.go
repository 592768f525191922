package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"hris/backend/config"
)

// Client Redis 客户端封装
// 当前用于拜访报表缓存与速率限制窗口；后续可扩展分布式锁等场景
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 拜访报表缓存 ──

const visitReportPrefix = "report:client_visit:"

// VisitReport 缓存中的客户拜访报表
type VisitReport struct {
	TotalAssignments int `json:"total_assignments"`
	UniqueEmployees  int `json:"unique_employees"`
}

func visitReportKey(clientID, start, end string) string {
	return fmt.Sprintf("%s%s:%s:%s", visitReportPrefix, clientID, start, end)
}

// GetVisitReport 读取缓存的拜访报表；未命中返回 (nil, nil)
func (c *Client) GetVisitReport(ctx context.Context, clientID, start, end string) (*VisitReport, error) {
	raw, err := c.rdb.Get(ctx, visitReportKey(clientID, start, end)).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var report VisitReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("拜访报表缓存解码失败: %w", err)
	}
	return &report, nil
}

// SetVisitReport 写入拜访报表缓存
func (c *Client) SetVisitReport(ctx context.Context, clientID, start, end string, report *VisitReport, ttl time.Duration) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, visitReportKey(clientID, start, end), raw, ttl).Err()
}

// ── 速率限制 ──

// CheckRateLimit 固定窗口速率检查：窗口内计数超过 limit 时返回 false
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		// 首次计数时设置窗口过期
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(limit), nil
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
