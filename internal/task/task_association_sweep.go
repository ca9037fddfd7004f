package task

import (
	"context"
	"time"

	"github.com/haierkeys/note-organizer-service/internal/app"

	"go.uber.org/zap"
)

// AssociationSweepTask removes notes_tags rows whose note or tag is gone.
// Multi-step writes are not transactional, so a crash between steps can
// leave dangling associations behind. This sweep keeps the join table
// consistent with the notes and tags tables.
// AssociationSweepTask 清理指向已删除笔记或标签的关联记录
type AssociationSweepTask struct {
	app    *app.App
	logger *zap.Logger
}

// Name returns the task name
func (t *AssociationSweepTask) Name() string {
	return "AssociationSweep"
}

// LoopInterval 未配置 cron 表达式时的兜底间隔
func (t *AssociationSweepTask) LoopInterval() time.Duration {
	return 24 * time.Hour
}

// IsStartupRun returns whether to run on startup
func (t *AssociationSweepTask) IsStartupRun() bool {
	return true
}

// CronSpec 从配置读取调度表达式
func (t *AssociationSweepTask) CronSpec() string {
	return t.app.Config().App.AssociationSweepCron
}

// Run executes the sweep
func (t *AssociationSweepTask) Run(ctx context.Context) error {
	swept, err := t.app.NoteRepo.DeleteOrphanAssociations(ctx)
	if err != nil {
		return err
	}
	if swept > 0 {
		t.logger.Info("orphan associations swept", zap.Int64("count", swept))
	}
	return nil
}

// NewAssociationSweepTask creates a new AssociationSweepTask instance
func NewAssociationSweepTask(appContainer *app.App) (Task, error) {
	return &AssociationSweepTask{
		app:    appContainer,
		logger: appContainer.Logger(),
	}, nil
}

// init registers the sweep task
func init() {
	RegisterWithApp(func(appContainer *app.App) (Task, error) {
		return NewAssociationSweepTask(appContainer)
	})
}
