package service

import (
	"context"
	"strconv"
	"time"

	"github.com/TIANLI0/LumenKit/config"
	"github.com/redis/go-redis/v9"
)

// RedisService 缓存已计算的平均强度，key 为上传内容的 MD5。
// 只缓存数值结果，不保存图片字节。
type RedisService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisService(cfg *config.RedisConfig) *RedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisService{
		client: client,
		ttl:    cfg.TTL,
	}
}

func (s *RedisService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// GetIntensity 从缓存获取平均强度
func (s *RedisService) GetIntensity(ctx context.Context, md5 string) (float64, bool, error) {
	key := "intensity:" + md5
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, false, nil // 缓存未命中
		}
		return 0, false, err
	}

	intensity, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, err
	}

	return intensity, true, nil
}

// SetIntensity 写入平均强度到缓存
func (s *RedisService) SetIntensity(ctx context.Context, md5 string, intensity float64) error {
	key := "intensity:" + md5
	val := strconv.FormatFloat(intensity, 'f', -1, 64)
	return s.client.Set(ctx, key, val, s.ttl).Err()
}

func (s *RedisService) Close() error {
	return s.client.Close()
}
