package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"nihongo_diary/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurger struct {
	mu    sync.Mutex
	calls []time.Duration
	err   error
}

func (p *fakePurger) PurgeDeletedUsers(ctx context.Context, olderThan time.Duration) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, olderThan)
	if p.err != nil {
		return 0, p.err
	}
	return 3, nil
}

func (p *fakePurger) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_RunPurgeNow(t *testing.T) {
	cfg := config.SchedulerConfig{Enabled: true, PurgeCron: "0 3 * * *", PurgeAfter: 720 * time.Hour}

	t.Run("正常系: 設定された保持期間で削除処理を呼ぶ", func(t *testing.T) {
		purger := &fakePurger{}
		s := New(purger, cfg, discardLogger())

		s.RunPurgeNow()

		require.Len(t, purger.calls, 1)
		assert.Equal(t, 720*time.Hour, purger.calls[0])
	})

	t.Run("異常系: 削除処理のエラーでパニックしない", func(t *testing.T) {
		purger := &fakePurger{err: errors.New("db down")}
		s := New(purger, cfg, discardLogger())

		assert.NotPanics(t, s.RunPurgeNow)
		assert.Equal(t, 1, purger.callCount())
	})
}

func TestScheduler_Start(t *testing.T) {
	t.Run("正常系: 開始と停止", func(t *testing.T) {
		purger := &fakePurger{}
		s := New(purger, config.SchedulerConfig{PurgeCron: "0 3 * * *", PurgeAfter: time.Hour}, discardLogger())

		require.NoError(t, s.Start())
		s.Stop()
	})

	t.Run("異常系: 不正なcron式", func(t *testing.T) {
		purger := &fakePurger{}
		s := New(purger, config.SchedulerConfig{PurgeCron: "not a cron", PurgeAfter: time.Hour}, discardLogger())

		err := s.Start()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a cron")
		assert.Equal(t, 0, purger.callCount())
	})
}
