// Package anim runs short frame-driven animations. A Clock is advanced by
// its owner's Update, so animations never outlive or race the object that
// started them.
package anim

// Task is advanced once per Clock.Advance until it reports done.
type Task interface {
	Step(deltaTime float32) (done bool)
}

// TaskFunc adapts a function to Task.
type TaskFunc func(deltaTime float32) bool

func (f TaskFunc) Step(deltaTime float32) bool {
	return f(deltaTime)
}

// Canceler is implemented by tasks that need to restore state when cancelled.
type Canceler interface {
	Cancel()
}

type scheduled struct {
	id   uint64
	task Task
}

// Clock owns a set of running tasks.
type Clock struct {
	tasks  []scheduled
	nextID uint64
}

// Start schedules task. It is first stepped by the next Advance.
func (c *Clock) Start(task Task) Handle {
	c.nextID++
	c.tasks = append(c.tasks, scheduled{id: c.nextID, task: task})
	return Handle{clock: c, id: c.nextID}
}

// Advance steps every task that was running when the call began, in start
// order, and drops the finished ones.
func (c *Clock) Advance(deltaTime float32) {
	if len(c.tasks) == 0 {
		return
	}
	running := make([]scheduled, len(c.tasks))
	copy(running, c.tasks)

	for _, s := range running {
		if !c.has(s.id) {
			continue // cancelled by an earlier task this frame
		}
		if s.task.Step(deltaTime) {
			c.remove(s.id)
		}
	}
}

// CancelAll cancels every running task.
func (c *Clock) CancelAll() {
	tasks := c.tasks
	c.tasks = nil
	for _, s := range tasks {
		if cc, ok := s.task.(Canceler); ok {
			cc.Cancel()
		}
	}
}

// Len is the number of running tasks.
func (c *Clock) Len() int {
	return len(c.tasks)
}

func (c *Clock) has(id uint64) bool {
	for _, s := range c.tasks {
		if s.id == id {
			return true
		}
	}
	return false
}

func (c *Clock) remove(id uint64) (Task, bool) {
	for i, s := range c.tasks {
		if s.id == id {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			return s.task, true
		}
	}
	return nil, false
}

// Handle refers to a started task. The zero Handle refers to nothing.
type Handle struct {
	clock *Clock
	id    uint64
}

// Running reports whether the task is still scheduled.
func (h Handle) Running() bool {
	return h.clock != nil && h.clock.has(h.id)
}

// Cancel unschedules the task and lets it restore its state. It returns
// false if the task had already finished or been cancelled.
func (h Handle) Cancel() bool {
	if h.clock == nil {
		return false
	}
	task, ok := h.clock.remove(h.id)
	if !ok {
		return false
	}
	if cc, ok := task.(Canceler); ok {
		cc.Cancel()
	}
	return true
}
