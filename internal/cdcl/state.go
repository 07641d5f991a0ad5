// Package cdcl implements the propagation and learning core of an
// incremental CDCL SAT engine: a two-watched-literal unit-resolution
// propagator, an implication graph, First-UIP conflict analysis, and
// symmetric decide/undo. It holds no opinion on how literals are chosen or
// how a formula is parsed — those are the job of an outer search driver and
// a DIMACS loader, respectively (see cmd/cdclcore and internal/parsers).
package cdcl

// SatState owns every variable, literal and clause arena, the trail, and the
// slots used to hand a conflict's asserting clause back to the driver. The
// zero value is not usable; construct one with NewSatState.
type SatState struct {
	vars    []*Variable
	lits    []*Literal // 2 * len(vars), positive/negative pairs per variable
	clauses []*Clause  // includes learned clauses, never shrinks

	decisions    []*Literal
	implications []*Literal

	decisionsApplied    int
	implicationsApplied int

	assertionClause      *Clause
	assertionClauseLevel int
	conflictPending      bool

	assertionClauseCount int

	seen seenSet
}

// NewSatState returns a freshly constructed engine with no variables and no
// clauses. Variables and original clauses are added with AddVariable and
// AddClause; this mirrors the role an external DIMACS loader plays per the
// library's contract.
func NewSatState() *SatState {
	return &SatState{seen: seenSet{addedTimestamp: 1}}
}

// NumVariables returns the number of variables in the problem (n).
func (s *SatState) NumVariables() int {
	return len(s.vars)
}

// NumClauses returns the number of clauses currently known to the engine,
// including learned ones.
func (s *SatState) NumClauses() int {
	return len(s.clauses)
}

// LearnedClauseCount returns the number of clauses installed via
// AssertClause over the engine's lifetime.
func (s *SatState) LearnedClauseCount() int {
	return s.assertionClauseCount
}

// VarByIndex returns the variable with the given 1-based index, or nil if i
// is out of range.
func (s *SatState) VarByIndex(i int) *Variable {
	if i < 1 || i > len(s.vars) {
		return nil
	}
	return s.vars[i-1]
}

// ClauseByIndex returns the clause with the given 1-based index, or nil if i
// is out of range. Learned clauses are indexed after all original clauses,
// in the order they were installed.
func (s *SatState) ClauseByIndex(i int) *Clause {
	if i < 1 || i > len(s.clauses) {
		return nil
	}
	return s.clauses[i-1]
}

// literalSlot maps a signed literal index to its slot in s.lits.
func literalSlot(l int) int {
	if l > 0 {
		return (l - 1) * 2
	}
	return (-l-1)*2 + 1
}

// LiteralByIndex returns the literal object for the given signed, nonzero
// index, or nil if l is zero or |l| is out of [1, NumVariables()]. The same
// object is returned for the same l across the engine's lifetime.
func (s *SatState) LiteralByIndex(l int) *Literal {
	if l == 0 {
		return nil
	}
	v := l
	if v < 0 {
		v = -v
	}
	if v > len(s.vars) {
		return nil
	}
	return s.lits[literalSlot(l)]
}

// AddVariable creates a new variable and its two literals, returning the
// variable's 1-based index.
func (s *SatState) AddVariable() int {
	id := len(s.vars) + 1
	v := &Variable{ID: id}
	pos := &Literal{Index: id, owner: v}
	neg := &Literal{Index: -id, owner: v}
	v.posLiteral = pos
	v.negLiteral = neg

	s.vars = append(s.vars, v)
	s.lits = append(s.lits, pos, neg)
	s.seen.expand()
	return id
}

// AddClause installs an original clause given as signed, nonzero literal
// indices. Duplicate variables within rawLits are preserved in the clause's
// element list but collapsed once each in every mentioned variable's
// UsedClauses. It returns a *LiteralError if rawLits contains a zero entry
// or a variable index outside [1, NumVariables()]; no state is mutated when
// it does.
//
// After installation the clause is flagged for checking and a full
// propagation pass runs immediately: clauses are added one at a time, so an
// earlier unit clause may already have assigned a variable this clause
// mentions, and the two-watched-literal invariant must account for that
// before the next AddClause call.
func (s *SatState) AddClause(rawLits []int) error {
	elems := make([]*Literal, 0, len(rawLits))
	for _, l := range rawLits {
		lit := s.LiteralByIndex(l)
		if lit == nil {
			return &LiteralError{Literal: l, NumVariables: len(s.vars)}
		}
		elems = append(elems, lit)
	}
	if len(elems) == 0 {
		elems = nil
	}

	c := &Clause{
		Index:         len(s.clauses) + 1,
		Literals:      elems,
		WasGenerated:  false,
		NeedsChecking: true,
	}
	if len(elems) > 1 {
		c.Watch1, c.Watch2 = 0, 1
	}

	s.clauses = append(s.clauses, c)
	s.registerUsedClause(c)

	// The cursor-driven propagate loop only re-examines a clause when one
	// of its variables is crossed by the decisions/implications cursor; a
	// freshly added clause whose variables were already set by an earlier
	// clause would otherwise never be looked at. Examine it directly first,
	// then let propagate carry any resulting implication to closure.
	if !s.examineClause(c, false) {
		return nil
	}
	s.propagate()
	return nil
}

// registerUsedClause appends c once to the UsedClauses list of every
// variable it mentions, collapsing duplicate occurrences within the clause.
func (s *SatState) registerUsedClause(c *Clause) {
	seen := make(map[int]bool, len(c.Literals))
	for _, lit := range c.Literals {
		id := lit.VarID()
		if seen[id] {
			continue
		}
		seen[id] = true
		lit.owner.UsedClauses = append(lit.owner.UsedClauses, c)
	}
}

// CurrentLevel returns the engine's active decision level: the level of the
// most recent standing decision, or the start level (1) if none stands. It
// is not the level a hypothetical next Decide would receive — that would be
// one higher still.
func (s *SatState) CurrentLevel() int {
	return len(s.decisions) + 1
}
