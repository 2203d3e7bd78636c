package storage

import (
	"context"
	"os"

	"translateapi/internal/core"
	"translateapi/internal/util"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const (
	statsRedisKey = "translateapi:stats"
)

// FileStorage implements persistence using JSON files.
type FileStorage struct {
	filePath string
}

// NewFileStorage creates file-backed stats storage.
func NewFileStorage(filePath string) *FileStorage {
	if filePath == "" {
		filePath = core.StatsFilePath
	}
	return &FileStorage{filePath: filePath}
}

func (fs *FileStorage) SaveStats(stats *core.GatewayStats) error {
	data, err := sonic.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fs.filePath, data, core.FilePermissionReadWrite)
}

func (fs *FileStorage) LoadStats() (*core.GatewayStats, error) {
	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return emptyStats(), nil
		}
		return nil, err
	}

	var stats core.GatewayStats
	if err := sonic.Unmarshal(data, &stats); err != nil {
		return nil, err
	}

	normalizeStats(&stats)
	return &stats, nil
}

func (fs *FileStorage) Close() error {
	return nil
}

// RedisStorage implements persistence using Redis.
type RedisStorage struct {
	client *redis.Client
	ctx    context.Context
	key    string
}

// RedisStorageConfig Redis storage config.
type RedisStorageConfig struct {
	URL string
	Key string
}

// NewRedisStorage connects to Redis and verifies the connection.
func NewRedisStorage(config RedisStorageConfig) (*RedisStorage, error) {
	opts, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	ctx := context.Background()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	key := config.Key
	if key == "" {
		key = statsRedisKey
	}

	return &RedisStorage{client: client, ctx: ctx, key: key}, nil
}

func (rs *RedisStorage) SaveStats(stats *core.GatewayStats) error {
	data, err := util.MarshalJSON(stats)
	if err != nil {
		return err
	}
	return rs.client.Set(rs.ctx, rs.key, data, 0).Err()
}

func (rs *RedisStorage) LoadStats() (*core.GatewayStats, error) {
	val, err := rs.client.Get(rs.ctx, rs.key).Result()
	if err != nil {
		if err == redis.Nil {
			return emptyStats(), nil
		}
		return nil, err
	}

	var stats core.GatewayStats
	if err := sonic.Unmarshal([]byte(val), &stats); err != nil {
		return nil, err
	}

	normalizeStats(&stats)
	return &stats, nil
}

func (rs *RedisStorage) Close() error {
	return rs.client.Close()
}

func emptyStats() *core.GatewayStats {
	return &core.GatewayStats{
		PairCounts:     map[string]int64{},
		RequestHistory: []core.RequestRecord{},
	}
}

func normalizeStats(stats *core.GatewayStats) {
	if stats.RequestHistory == nil {
		stats.RequestHistory = []core.RequestRecord{}
	}
	if stats.PairCounts == nil {
		stats.PairCounts = map[string]int64{}
	}
}

// InitStorage selects the stats backend: Redis when REDIS_URL is set and
// reachable, file storage otherwise.
func InitStorage(logger core.Logger) (core.StorageInterface, error) {
	redisURL := os.Getenv("REDIS_URL")

	if redisURL != "" {
		redisStorage, err := NewRedisStorage(RedisStorageConfig{
			URL: redisURL,
			Key: statsRedisKey,
		})
		if err != nil {
			logger.Warn("Failed to initialize Redis storage: %v, falling back to file storage", err)
			return NewFileStorage(core.StatsFilePath), nil
		}
		logger.Info("Using Redis storage")
		return redisStorage, nil
	}

	logger.Info("Using file storage")
	return NewFileStorage(core.StatsFilePath), nil
}
