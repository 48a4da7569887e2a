package tracker

import "taskmanager/local-app/internal/models"

// TaskRef is a task together with its position in the task store and its
// 1-based number in a per-user listing.
type TaskRef struct {
	Index  int
	Number int
	Task   models.Task
}

// TaskStore is the ordered, append-only task list. Tasks are edited in place
// and never removed or reordered.
type TaskStore struct {
	tasks []models.Task
}

// NewTaskStore creates a store holding tasks in the given order.
func NewTaskStore(tasks []models.Task) *TaskStore {
	s := &TaskStore{tasks: make([]models.Task, len(tasks))}
	copy(s.tasks, tasks)
	return s
}

// Append adds t at the end and returns its index.
func (s *TaskStore) Append(t models.Task) int {
	s.tasks = append(s.tasks, t)
	return len(s.tasks) - 1
}

// Get returns the task at index.
func (s *TaskStore) Get(index int) (models.Task, bool) {
	if index < 0 || index >= len(s.tasks) {
		return models.Task{}, false
	}
	return s.tasks[index], true
}

// set replaces the task at index; callers check the index first.
func (s *TaskStore) set(index int, t models.Task) {
	s.tasks[index] = t
}

// truncate drops tasks past n, undoing failed appends.
func (s *TaskStore) truncate(n int) {
	s.tasks = s.tasks[:n]
}

// Filter returns the tasks assigned to username in store order.
func (s *TaskStore) Filter(username string) []TaskRef {
	var refs []TaskRef
	for i, t := range s.tasks {
		if t.Username != username {
			continue
		}
		refs = append(refs, TaskRef{Index: i, Number: len(refs) + 1, Task: t})
	}
	return refs
}

// All returns a copy of every task in store order.
func (s *TaskStore) All() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	return len(s.tasks)
}
