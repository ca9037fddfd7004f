// Package safe_close 提供多组件的优雅关闭协调
package safe_close

import (
	"sync"
)

// SafeClose coordinates the shutdown of multiple long-running components
// SafeClose 协调多个常驻组件的关闭
// Components attach shutdown-aware goroutines; a single close signal
// fans out to all of them and WaitClosed blocks until every one is done
// 组件通过 Attach 注册关闭感知的协程；关闭信号广播给所有组件，
// WaitClosed 阻塞直到全部退出
type SafeClose struct {
	mu          sync.Mutex
	wg          sync.WaitGroup
	closeSignal chan struct{}
	closeOnce   sync.Once
	err         error
}

// NewSafeClose 创建 SafeClose 实例
func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach registers a component goroutine
// Attach 注册组件协程
// f 必须在退出前调用 done，并在 closeSignal 关闭后尽快返回
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	doneOnce := sync.Once{}
	done := func() {
		doneOnce.Do(s.wg.Done)
	}
	go f(done, s.closeSignal)
}

// SendCloseSignal broadcasts the close signal
// SendCloseSignal 广播关闭信号，首个非 nil 错误会被记录
func (s *SafeClose) SendCloseSignal(err error) {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		close(s.closeSignal)
	})
}

// CloseSignal 返回关闭信号通道
func (s *SafeClose) CloseSignal() <-chan struct{} {
	return s.closeSignal
}

// WaitClosed blocks until all attached components have finished
// WaitClosed 阻塞直到所有已注册组件退出，返回触发关闭的错误
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
