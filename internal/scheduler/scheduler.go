package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nihongo_diary/internal/config"
	"nihongo_diary/internal/middleware"

	"github.com/go-co-op/gocron"
)

// Purger は退会済みユーザーを物理削除する処理です (service.UserService が満たす)
type Purger interface {
	PurgeDeletedUsers(ctx context.Context, olderThan time.Duration) (int, error)
}

// Scheduler は定期実行ジョブを管理します
type Scheduler struct {
	scheduler *gocron.Scheduler
	purger    Purger
	cfg       config.SchedulerConfig
	logger    *slog.Logger
}

func New(purger Purger, cfg config.SchedulerConfig, logger *slog.Logger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll() // 前回の実行が終わっていなければスキップ
	return &Scheduler{
		scheduler: s,
		purger:    purger,
		cfg:       cfg,
		logger:    logger.With(slog.String("component", "scheduler")),
	}
}

// Start はジョブを登録し、非同期で実行を開始します
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Cron(s.cfg.PurgeCron).Do(s.purgeDeletedUsers); err != nil {
		return fmt.Errorf("schedule purge job (%s): %w", s.cfg.PurgeCron, err)
	}
	s.scheduler.StartAsync()
	s.logger.Info("Scheduler started", "purge_cron", s.cfg.PurgeCron, "purge_after", s.cfg.PurgeAfter)
	return nil
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.logger.Info("Scheduler stopped")
}

// RunPurgeNow はジョブを即時実行します (管理用・テスト用)
func (s *Scheduler) RunPurgeNow() {
	s.purgeDeletedUsers()
}

func (s *Scheduler) purgeDeletedUsers() {
	ctx := middleware.WithLogger(context.Background(), s.logger.With(slog.String("job", "purge_deleted_users")))
	start := time.Now()

	purged, err := s.purger.PurgeDeletedUsers(ctx, s.cfg.PurgeAfter)
	if err != nil {
		s.logger.Error("Purge job failed", "error", err)
		return
	}
	s.logger.Info("Purge job finished", "purged", purged, "duration", time.Since(start))
}
