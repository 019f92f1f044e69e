package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/eduardo/landingkit/internal/logger"
	"golang.org/x/sync/errgroup"
)

// State is the lifecycle of a pipeline
type State string

const (
	StateCreated   State = "created"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

// Task is a named unit of work executed against the shared context
type Task[T any] struct {
	Name    string
	Execute func(ctx context.Context, c T) error
}

// Result is what Run reports. Error names the failing step.
type Result struct {
	Success    bool
	Error      string
	FailedStep string
}

// Pipeline runs tasks against one shared context value. A pipeline runs
// once; build a new one to retry.
type Pipeline[T any] struct {
	context T
	tasks   []Task[T]
	log     logger.Logger

	mu    sync.Mutex
	state State
}

type Option[T any] func(*Pipeline[T])

func WithLogger[T any](l logger.Logger) Option[T] {
	return func(p *Pipeline[T]) {
		p.log = l
	}
}

func New[T any](c T, opts ...Option[T]) *Pipeline[T] {
	p := &Pipeline[T]{context: c, state: StateCreated}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = logger.Discard()
	}
	return p
}

// AddTask appends task. Duplicate names are kept as separate steps.
func (p *Pipeline[T]) AddTask(task Task[T]) *Pipeline[T] {
	p.tasks = append(p.tasks, task)
	return p
}

// Tasks returns the step names in execution order
func (p *Pipeline[T]) Tasks() []string {
	names := make([]string, len(p.tasks))
	for i, t := range p.tasks {
		names[i] = t.Name
	}
	return names
}

func (p *Pipeline[T]) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Run executes the tasks in insertion order and stops at the first failure.
// Files already written by earlier steps are left in place.
func (p *Pipeline[T]) Run(ctx context.Context, traceID string) Result {
	if ctx == nil {
		ctx = context.Background()
	}
	if res, ok := p.begin(); !ok {
		return res
	}
	log := p.log.With("trace_id", traceID)
	log.Info("pipeline started", "steps", len(p.tasks))
	started := time.Now()

	for _, task := range p.tasks {
		if err := ctx.Err(); err != nil {
			return p.fail(log, task.Name, err)
		}
		if err := p.execute(ctx, log, task); err != nil {
			return p.fail(log, task.Name, err)
		}
	}

	p.finish(StateCompleted)
	log.Info("pipeline completed", "duration", time.Since(started))
	return Result{Success: true}
}

// RunConcurrent starts every task at once. The first failure cancels the
// context handed to the others and is the one reported.
func (p *Pipeline[T]) RunConcurrent(ctx context.Context, traceID string) Result {
	if ctx == nil {
		ctx = context.Background()
	}
	if res, ok := p.begin(); !ok {
		return res
	}
	log := p.log.With("trace_id", traceID)
	log.Info("pipeline started", "steps", len(p.tasks), "concurrent", true)
	started := time.Now()

	var (
		once     sync.Once
		failed   string
		firstErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, task := range p.tasks {
		g.Go(func() error {
			err := gctx.Err()
			if err == nil {
				err = p.execute(gctx, log, task)
			}
			if err != nil {
				once.Do(func() {
					failed = task.Name
					firstErr = err
				})
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return p.fail(log, failed, firstErr)
	}

	p.finish(StateCompleted)
	log.Info("pipeline completed", "duration", time.Since(started))
	return Result{Success: true}
}

func (p *Pipeline[T]) begin() (Result, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StateCreated {
		return Result{Success: false, Error: fmt.Sprintf("pipeline already %s", p.state)}, false
	}
	p.state = StateRunning
	return Result{}, true
}

func (p *Pipeline[T]) finish(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

// execute runs a single task and turns a panic into an error
func (p *Pipeline[T]) execute(ctx context.Context, log logger.Logger, task Task[T]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	started := time.Now()
	log.Debug("step started", "step", task.Name)
	if task.Execute == nil {
		return fmt.Errorf("task has no execute function")
	}
	if err := task.Execute(ctx, p.context); err != nil {
		return err
	}
	log.Debug("step finished", "step", task.Name, "duration", time.Since(started))
	return nil
}

func (p *Pipeline[T]) fail(log logger.Logger, step string, err error) Result {
	p.finish(StateFailed)
	msg := fmt.Sprintf("Fallo en el paso: %s. Detalles: %s", step, err.Error())
	log.Error("pipeline failed", "step", step, "err", err)
	return Result{Success: false, Error: msg, FailedStep: step}
}
