// internal/field/driver.go
package field

import (
	"context"
	"sync/atomic"
	"time"

	"go-magnetic-field/internal/event"
)

// Scheduler ждёт следующего обновления экрана
type Scheduler interface {
	NextFrame(ctx context.Context) error
}

// LoopScheduler ждёт кадра из Frames, а пока ждёт — рассылает события хоста
// через Dispatcher в том же потоке, что и кадровый цикл.
type LoopScheduler struct {
	Frames     <-chan time.Time
	Events     <-chan event.Event
	Dispatcher *event.Dispatcher
}

func (s *LoopScheduler) NextFrame(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-s.Events:
			if !ok {
				s.Events = nil // закрытый канал больше не выбираем
				continue
			}
			s.Dispatcher.Dispatch(e)
		case <-s.Frames:
			return nil
		}
	}
}

// Driver крутит кадровый цикл поля, пока его не остановят.
type Driver struct {
	field     *Field
	scheduler Scheduler
	stopped   atomic.Bool
	frames    atomic.Uint64
}

func NewDriver(f *Field, scheduler Scheduler) *Driver {
	return &Driver{field: f, scheduler: scheduler}
}

// Step выполняет ровно один кадр. Для хостов, которые сами владеют циклом.
func (d *Driver) Step() {
	d.field.Frame()
	d.frames.Add(1)
}

// Run выполняет Update→Draw на каждом кадре планировщика до Stop или отмены ctx.
// Возвращает nil после Stop и ошибку планировщика или контекста в остальных случаях.
func (d *Driver) Run(ctx context.Context) error {
	for !d.stopped.Load() {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.Step()
		if err := d.scheduler.NextFrame(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Stop просит цикл завершиться перед следующим кадром
func (d *Driver) Stop() {
	d.stopped.Store(true)
}

func (d *Driver) Stopped() bool {
	return d.stopped.Load()
}

// Frames — число отрисованных кадров
func (d *Driver) Frames() uint64 {
	return d.frames.Load()
}
