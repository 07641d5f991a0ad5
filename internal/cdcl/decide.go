package cdcl

// Decide asserts literal l as a new decision at a fresh decision level and
// runs unit resolution to closure. l must name a free variable and the
// number of standing decisions must be below NumVariables(); otherwise this
// is a precondition violation and Decide returns nil without mutating any
// state.
//
// It returns the learned asserting clause if propagation conflicts,
// otherwise nil. A conflict with no returned clause cannot happen here: the
// decision level after a Decide is always at least 2, and First-UIP always
// produces a clause above the start level (§4.5).
func (s *SatState) Decide(l int) *Clause {
	lit := s.LiteralByIndex(l)
	if lit == nil || lit.Set() || len(s.decisions) >= len(s.vars) {
		return nil
	}

	s.decisions = append(s.decisions, lit)
	v := lit.owner
	v.IsSet = true
	v.SetSign = lit.IsPositive()
	v.ImplicationClause = nil
	v.DecisionLevel = len(s.decisions) + 1

	s.flagUsedClauses(v)

	if !s.propagate() {
		return s.assertionClause
	}
	return nil
}

// UndoDecide removes the last decision together with every implication
// forced at or above its decision level, resetting each affected variable to
// free, and re-examines every clause left flagged as needing checking
// without re-entering propagation. Calling it with no standing decision is a
// precondition violation: it is a no-op.
func (s *SatState) UndoDecide() {
	if len(s.decisions) == 0 {
		return
	}

	n := len(s.decisions) - 1
	popped := s.decisions[n]
	s.decisions = s.decisions[:n]
	poppedLevel := popped.owner.DecisionLevel

	for len(s.implications) > 0 {
		last := s.implications[len(s.implications)-1]
		if last.owner.DecisionLevel < poppedLevel {
			break
		}
		s.implications = s.implications[:len(s.implications)-1]
		s.unapply(last)
	}
	s.unapply(popped)

	s.decisionsApplied = len(s.decisions)
	s.implicationsApplied = len(s.implications)

	for _, c := range s.clauses {
		if c.NeedsChecking {
			s.examineClause(c, true)
		}
	}
}

// unapply resets lit's variable to free and re-flags every clause that
// mentions it, clearing any subsumed status that variable's assignment
// might have been responsible for.
func (s *SatState) unapply(lit *Literal) {
	v := lit.owner
	v.IsSet = false
	v.SetSign = false
	v.ImplicationClause = nil
	v.DecisionLevel = 0

	for _, c := range v.UsedClauses {
		c.NeedsChecking = true
		c.IsSubsumed = false
	}
}
