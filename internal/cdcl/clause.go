package cdcl

import "strings"

// Clause is a multiset of literals with at least one element. Watch1 and
// Watch2 are indices into Literals, not global literal identities — that is
// how the watched-literal scheme stays local to each clause.
type Clause struct {
	// Index is the clause's 1-based index, assigned when it is installed
	// (at construction for original clauses, by AssertClause for learned
	// ones).
	Index int

	// Literals holds the clause's elements, duplicates preserved.
	Literals []*Literal

	// Watch1 and Watch2 are indices into Literals designating the two
	// watched elements. They may coincide only for a unit clause.
	Watch1, Watch2 int

	// WasGenerated distinguishes a learned clause from an original one.
	WasGenerated bool

	// IsSubsumed is true while at least one of the clause's literals is
	// currently asserted.
	IsSubsumed bool

	// NeedsChecking is the propagator's per-clause work-queue flag.
	NeedsChecking bool

	mark bool
}

// Mark sets the external traversal mark bit.
func (c *Clause) Mark() {
	c.mark = true
}

// Unmark clears the external traversal mark bit.
func (c *Clause) Unmark() {
	c.mark = false
}

// IsMarked reports the external traversal mark bit.
func (c *Clause) IsMarked() bool {
	return c.mark
}

func (c *Clause) String() string {
	if len(c.Literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.Literals[0].String())
	for _, l := range c.Literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// clauseKind classifies a clause's current status relative to the
// assignment, as found by scanClause.
type clauseKind int

const (
	kindSubsumed clauseKind = iota
	kindMulti
	kindUnit
	kindConflict
)

// scanClause walks a clause's elements in order, stopping early the moment
// an asserted literal is found. It returns the clause's classification and
// up to two indices into c.Literals: for kindSubsumed, a is the index of the
// asserted literal; for kindMulti, a and b are the first two free indices;
// for kindUnit, a is the sole free index; for kindConflict, a and b are -1.
func scanClause(c *Clause) (kind clauseKind, a, b int) {
	free1, free2 := -1, -1
	for i, lit := range c.Literals {
		if lit.Asserted() {
			return kindSubsumed, i, -1
		}
		if !lit.Set() {
			if free1 == -1 {
				free1 = i
			} else if free2 == -1 {
				free2 = i
			}
		}
	}
	switch {
	case free1 != -1 && free2 != -1:
		return kindMulti, free1, free2
	case free1 != -1:
		return kindUnit, free1, -1
	default:
		return kindConflict, -1, -1
	}
}
