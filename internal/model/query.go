package model

// Op is a predicate operator understood by the catalog store.
type Op string

const (
	OpEq       Op = "_eq"
	OpIn       Op = "_in"
	OpContains Op = "_icontains"
	OpGTE      Op = "_gte"
	OpLTE      Op = "_lte"
)

// Clause is one atomic filter condition of a compiled catalog query.
// A clause either addresses a single store field or, when Or is set,
// groups alternative sub-clauses.
type Clause struct {
	Field  string
	Op     Op
	Values []string
	Or     []Clause
}
