package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersRegistered   uint64
	LoginSuccesses    uint64
	LoginFailures     uint64
	TasksCreated      uint64
	TaskStatusUpdates uint64
	TasksDeleted      uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	usersRegistered   uint64
	loginSuccesses    uint64
	loginFailures     uint64
	tasksCreated      uint64
	taskStatusUpdates uint64
	tasksDeleted      uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersRegistered:   atomic.LoadUint64(&m.usersRegistered),
		LoginSuccesses:    atomic.LoadUint64(&m.loginSuccesses),
		LoginFailures:     atomic.LoadUint64(&m.loginFailures),
		TasksCreated:      atomic.LoadUint64(&m.tasksCreated),
		TaskStatusUpdates: atomic.LoadUint64(&m.taskStatusUpdates),
		TasksDeleted:      atomic.LoadUint64(&m.tasksDeleted),
	}
}

// IncUserRegistered increments the registration counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	atomic.AddUint64(&m.usersRegistered, 1)
}

// IncLoginSuccess increments the successful login counter.
func (m *InMemoryRecorder) IncLoginSuccess() {
	atomic.AddUint64(&m.loginSuccesses, 1)
}

// IncLoginFailure increments the failed login counter.
func (m *InMemoryRecorder) IncLoginFailure() {
	atomic.AddUint64(&m.loginFailures, 1)
}

// IncTaskCreated increments the task creation counter.
func (m *InMemoryRecorder) IncTaskCreated() {
	atomic.AddUint64(&m.tasksCreated, 1)
}

// IncTaskStatusUpdated increments the status update counter.
func (m *InMemoryRecorder) IncTaskStatusUpdated() {
	atomic.AddUint64(&m.taskStatusUpdates, 1)
}

// IncTaskDeleted increments the soft delete counter.
func (m *InMemoryRecorder) IncTaskDeleted() {
	atomic.AddUint64(&m.tasksDeleted, 1)
}
