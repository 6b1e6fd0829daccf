package scheduler

import (
	"github.com/rvannest/joist/internal/domain"
)

// Snapshot is the in-memory view of the task tree and its dependency edges
// that one computation pass operates on. Adjacency maps are built per
// snapshot (never cached on the task objects) so cycles are detected
// structurally rather than by recursive traversal. Mutating passes mark
// tasks dirty; the caller persists DirtyTasks afterwards.
type Snapshot struct {
	Tasks []*domain.Task // stable tree order

	byCode   map[string]*domain.Task
	children map[string][]*domain.Task
	preds    map[string][]domain.Dependency // keyed by successor code
	succs    map[string][]domain.Dependency // keyed by predecessor code
	owners   map[string][]string
	dirty    map[string]bool
}

// NewSnapshot builds a snapshot from tasks in tree order, the full edge set,
// and the owner names per task code. Edges referencing codes missing from
// tasks are kept in the adjacency maps; computations treat the missing
// endpoint as absent data, not an error.
func NewSnapshot(tasks []*domain.Task, edges []domain.Dependency, owners map[string][]string) *Snapshot {
	s := &Snapshot{
		Tasks:    tasks,
		byCode:   make(map[string]*domain.Task, len(tasks)),
		children: make(map[string][]*domain.Task),
		preds:    make(map[string][]domain.Dependency),
		succs:    make(map[string][]domain.Dependency),
		owners:   owners,
		dirty:    make(map[string]bool),
	}
	for _, t := range tasks {
		s.byCode[t.Code] = t
	}
	for _, t := range tasks {
		if t.ParentCode != nil {
			s.children[*t.ParentCode] = append(s.children[*t.ParentCode], t)
		}
	}
	for _, e := range edges {
		s.preds[e.SuccessorCode] = append(s.preds[e.SuccessorCode], e)
		s.succs[e.PredecessorCode] = append(s.succs[e.PredecessorCode], e)
	}
	return s
}

// Task returns the task with the given code, or nil.
func (s *Snapshot) Task(code string) *domain.Task {
	return s.byCode[code]
}

// Roots returns tasks without a parent, in tree order.
func (s *Snapshot) Roots() []*domain.Task {
	var roots []*domain.Task
	for _, t := range s.Tasks {
		if t.ParentCode == nil {
			roots = append(roots, t)
		}
	}
	return roots
}

// Children returns the direct children of a code, in tree order.
func (s *Snapshot) Children(code string) []*domain.Task {
	return s.children[code]
}

// Descendants returns every task below code, depth-first in tree order.
func (s *Snapshot) Descendants(code string) []*domain.Task {
	var out []*domain.Task
	for _, c := range s.children[code] {
		out = append(out, c)
		out = append(out, s.Descendants(c.Code)...)
	}
	return out
}

// Ancestors returns the chain of parents for code, nearest-first.
func (s *Snapshot) Ancestors(code string) []*domain.Task {
	var out []*domain.Task
	t := s.byCode[code]
	for t != nil && t.ParentCode != nil {
		parent := s.byCode[*t.ParentCode]
		if parent == nil {
			break
		}
		out = append(out, parent)
		t = parent
	}
	return out
}

// Predecessors returns the edges pointing at code.
func (s *Snapshot) Predecessors(code string) []domain.Dependency {
	return s.preds[code]
}

// Successors returns the edges leaving code.
func (s *Snapshot) Successors(code string) []domain.Dependency {
	return s.succs[code]
}

// Owners returns the distinct owner names for a task code.
func (s *Snapshot) Owners(code string) []string {
	return s.owners[code]
}

// MarkDirty records that a task was mutated and needs persisting.
func (s *Snapshot) MarkDirty(code string) {
	s.dirty[code] = true
}

// DirtyTasks returns the mutated tasks in tree order.
func (s *Snapshot) DirtyTasks() []*domain.Task {
	var out []*domain.Task
	for _, t := range s.Tasks {
		if s.dirty[t.Code] {
			out = append(out, t)
		}
	}
	return out
}
