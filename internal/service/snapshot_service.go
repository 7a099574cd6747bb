package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hackathon_judging_backend/internal/model"
	"hackathon_judging_backend/internal/util"
	"hackathon_judging_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const snapshotCacheKeyPrefix = "snapshot:"
const snapshotCacheTTL = 24 * time.Hour

// SnapshotDetail is a stored snapshot with its frozen results decoded. What
// Get returns is exactly what Create stored; later score changes never leak
// in.
type SnapshotDetail struct {
	ID          string            `json:"id"`
	HackathonID uint              `json:"hackathonId"`
	Name        string            `json:"name,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	Results     *HackathonResults `json:"results"`
}

// SnapshotService freezes the current ranked results into immutable records.
// Snapshots never change after creation, which is what makes the read-through
// Redis cache safe: there is nothing to invalidate.
type SnapshotService struct {
	Snapshots SnapshotStore
	Results   *ResultsService
	Redis     *redis.Client
	Storage   *StorageService
}

func NewSnapshotService(snapshots SnapshotStore, results *ResultsService, rdb *redis.Client, storage *StorageService) *SnapshotService {
	return &SnapshotService{
		Snapshots: snapshots,
		Results:   results,
		Redis:     rdb,
		Storage:   storage,
	}
}

// Create freezes the hackathon's full results, including the per-judge and
// per-criterion breakdown for audit, under an optional human label.
func (s *SnapshotService) Create(hackathonID uint, name string) (*SnapshotDetail, error) {
	results, err := s.Results.Compute(hackathonID, true)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(results)
	if err != nil {
		return nil, err
	}

	snapshot := &model.ResultSnapshot{
		HackathonID: hackathonID,
		Name:        name,
		Payload:     payload,
	}
	if err := s.Snapshots.Create(snapshot); err != nil {
		return nil, err
	}

	return &SnapshotDetail{
		ID:          snapshot.ID,
		HackathonID: snapshot.HackathonID,
		Name:        snapshot.Name,
		CreatedAt:   snapshot.CreatedAt,
		Results:     results,
	}, nil
}

func (s *SnapshotService) List() ([]model.SnapshotSummary, error) {
	return s.Snapshots.List()
}

func (s *SnapshotService) Get(ctx context.Context, id string) (*SnapshotDetail, error) {
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, snapshotCacheKeyPrefix+id).Result()
		if err == nil {
			var detail SnapshotDetail
			if err := json.Unmarshal([]byte(val), &detail); err == nil {
				return &detail, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("snapshot cache read failed", zap.Error(err))
		}
	}

	snapshot, err := s.Snapshots.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSnapshotNotFound
		}
		return nil, err
	}

	var results HackathonResults
	if err := json.Unmarshal(snapshot.Payload, &results); err != nil {
		return nil, err
	}

	detail := &SnapshotDetail{
		ID:          snapshot.ID,
		HackathonID: snapshot.HackathonID,
		Name:        snapshot.Name,
		CreatedAt:   snapshot.CreatedAt,
		Results:     &results,
	}

	if s.Redis != nil {
		if cached, err := json.Marshal(detail); err == nil {
			if err := s.Redis.Set(ctx, snapshotCacheKeyPrefix+id, cached, snapshotCacheTTL).Err(); err != nil {
				logger.Log.Warn("snapshot cache write failed", zap.Error(err))
			}
		}
	}
	return detail, nil
}

// Export publishes a snapshot's JSON to the configured object store so final
// results can be shared outside the admin panel. Returns the object URL.
func (s *SnapshotService) Export(ctx context.Context, id string) (string, error) {
	if s.Storage == nil || s.Storage.Provider == nil {
		return "", util.ErrStorageUnavailable
	}

	detail, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(detail, "", "  ")
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("snapshots/%s.json", detail.ID)
	return s.Storage.Provider.Upload(ctx, filename, bytes.NewReader(data), int64(len(data)), "application/json")
}
