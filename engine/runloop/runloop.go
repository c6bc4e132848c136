package runloop

import (
	"context"
	"sync"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// Task is a unit of work executed by a Loop.
type Task func()

// Loop is a cooperative task loop with a microtask and a macrotask queue.
//
// Queue and Post may be called from any goroutine; tasks are executed on the
// goroutine calling Turn or RunUntil.
type Loop struct {
	mu         sync.Mutex
	microtasks *doublylinkedlist.List
	macrotasks *doublylinkedlist.List
	turns      int
}

// New creates an empty loop.
func New() *Loop {
	return &Loop{
		microtasks: doublylinkedlist.New(),
		macrotasks: doublylinkedlist.New(),
	}
}

// Queue adds a microtask. Microtasks are executed before the next macrotask.
func (l *Loop) Queue(task Task) {
	if task == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.microtasks.Add(task)
}

// Post adds a macrotask. Macrotasks are executed one per turn, after all
// microtasks are complete.
func (l *Loop) Post(task Task) {
	if task == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.macrotasks.Add(task)
}

// Turn processes one iteration of the loop.
// It drains all microtasks, then executes one macrotask.
// Returns true if there are more tasks to process.
func (l *Loop) Turn() bool {
	l.mu.Lock()
	l.turns++
	turn := l.turns
	l.mu.Unlock()
	n := 0
	for {
		t := pop(&l.mu, l.microtasks)
		if t == nil {
			break
		}
		t()
		n++
	}
	if t := pop(&l.mu, l.macrotasks); t != nil {
		t()
		n++
	}
	tracer().Debugf("turn #%d executed %d task(s)", turn, n)
	return l.Pending()
}

func pop(mu *sync.Mutex, queue *doublylinkedlist.List) Task {
	mu.Lock()
	defer mu.Unlock()
	v, ok := queue.Get(0)
	if !ok {
		return nil
	}
	queue.Remove(0)
	return v.(Task)
}

// Pending returns true if there are any tasks waiting.
func (l *Loop) Pending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return !l.microtasks.Empty() || !l.macrotasks.Empty()
}

// Turns returns the number of turns executed so far.
func (l *Loop) Turns() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.turns
}

// RunUntil executes turns until done returns true. done is polled once
// before every turn. If done is nil, RunUntil returns as soon as no task is
// pending. RunUntil does not time out: it returns early only if ctx is
// cancelled, in which case ctx.Err() is returned.
//
// If no task is pending and done still reports false, nothing can change any
// more and RunUntil returns.
func (l *Loop) RunUntil(ctx context.Context, done func() bool) error {
	if done == nil {
		done = func() bool { return false }
	}
	for !done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !l.Pending() {
			return nil
		}
		l.Turn()
	}
	return nil
}

// Drain executes turns until no task is pending.
func (l *Loop) Drain(ctx context.Context) error {
	return l.RunUntil(ctx, nil)
}
