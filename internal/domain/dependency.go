package domain

// Dependency is a directed edge between two tasks, identified by code.
// LagDays may be negative (lead time). The scheduling core only reads edges.
type Dependency struct {
	PredecessorCode string
	SuccessorCode   string
	Type            DependencyType
	LagDays         float64
}
