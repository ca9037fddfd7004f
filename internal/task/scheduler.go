// Package task 提供后台任务调度
package task

import (
	"context"
	"time"

	"github.com/haierkeys/note-organizer-service/pkg/safe_close"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Task 定义任务接口
type Task interface {
	Name() string                  // 任务名称
	Run(ctx context.Context) error // 执行任务
	LoopInterval() time.Duration   // 执行间隔
	IsStartupRun() bool            // 是否立即执行一次
}

// CronTask 按 cron 表达式调度的任务
// CronSpec 返回空串时退回 LoopInterval 调度
type CronTask interface {
	Task
	CronSpec() string
}

// Scheduler 任务调度器
type Scheduler struct {
	logger *zap.Logger
	tasks  []Task
	sc     *safe_close.SafeClose
}

// NewScheduler 创建任务调度器
func NewScheduler(logger *zap.Logger, sc *safe_close.SafeClose) *Scheduler {
	return &Scheduler{
		logger: logger,
		tasks:  make([]Task, 0),
		sc:     sc,
	}
}

// AddTask 添加任务
func (s *Scheduler) AddTask(task Task) {
	s.tasks = append(s.tasks, task)
}

// Start 启动所有任务
func (s *Scheduler) Start() {
	if len(s.tasks) == 0 {
		s.logger.Info("no tasks to schedule")
		return
	}

	s.logger.Info("tasks starting ", zap.Int("count", len(s.tasks)))

	for _, task := range s.tasks {
		s.startTask(task)
	}
}

// cronSchedule 解析任务的 cron 表达式，无表达式或解析失败时返回 nil
func (s *Scheduler) cronSchedule(task Task) cron.Schedule {
	ct, ok := task.(CronTask)
	if !ok || ct.CronSpec() == "" {
		return nil
	}
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(ct.CronSpec())
	if err != nil {
		s.logger.Error("failed to parse cron expression",
			zap.String("name", task.Name()),
			zap.String("expr", ct.CronSpec()),
			zap.Error(err))
		return nil
	}
	return schedule
}

// startTask 启动单个任务
func (s *Scheduler) startTask(task Task) {

	s.sc.Attach(func(done func(), closeSignal <-chan struct{}) {
		defer done()

		// 如果任务需要立即执行
		if task.IsStartupRun() {
			s.logger.Info("task running", zap.String("name", task.Name()), zap.Bool("startupRun", true))
			go s.runTask(task, true)
		}

		if schedule := s.cronSchedule(task); schedule != nil {
			s.runByCron(task, schedule, closeSignal)
			return
		}

		if task.LoopInterval() <= 0 {
			return
		}

		ticker := time.NewTicker(task.LoopInterval())
		defer ticker.Stop()

		// 定时执行
		for {
			select {
			case <-ticker.C:
				s.logger.Info("task running", zap.String("name", task.Name()), zap.Bool("loopRun", true))
				s.runTask(task, false)
			case <-closeSignal:
				s.logger.Info("task stopped", zap.String("name", task.Name()), zap.Bool("loopRun", true))
				return
			}
		}
	})
}

// runByCron 按 cron 计划执行任务，每次执行后重算下一次触发时间
func (s *Scheduler) runByCron(task Task, schedule cron.Schedule, closeSignal <-chan struct{}) {
	for {
		next := schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-timer.C:
			s.logger.Info("task running", zap.String("name", task.Name()), zap.Time("scheduledAt", next))
			s.runTask(task, false)
		case <-closeSignal:
			timer.Stop()
			s.logger.Info("task stopped", zap.String("name", task.Name()))
			return
		}
	}
}

func (s *Scheduler) runTask(task Task, startupRun bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("task run panic",
				zap.String("name", task.Name()),
				zap.Any("panic", r),
				zap.Stack("stack"))
		}
	}()
	if err := task.Run(context.Background()); err != nil {
		s.logger.Error("task running error",
			zap.String("name", task.Name()),
			zap.Bool("startupRun", startupRun),
			zap.Error(err))
	}
}
