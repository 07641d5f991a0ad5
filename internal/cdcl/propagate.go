package cdcl

// propagate runs unit resolution to closure. It advances the decisions
// cursor, then the implications cursor, re-scanning every flagged clause in
// each affected variable's UsedClauses; because examining a clause can
// append new implications, the two cursors are drained in a loop until both
// reach the current size of their sequence. It returns false the moment a
// clause is found with no free and no asserted literal, after analyze has
// populated assertionClause/assertionClauseLevel.
func (s *SatState) propagate() bool {
	for s.decisionsApplied < len(s.decisions) || s.implicationsApplied < len(s.implications) {
		for s.decisionsApplied < len(s.decisions) {
			v := s.decisions[s.decisionsApplied].owner
			s.decisionsApplied++
			if !s.recheckUsedClauses(v, false) {
				return false
			}
		}
		for s.implicationsApplied < len(s.implications) {
			v := s.implications[s.implicationsApplied].owner
			s.implicationsApplied++
			if !s.recheckUsedClauses(v, false) {
				return false
			}
		}
	}
	return true
}

// recheckUsedClauses re-examines every flagged, non-subsumed clause in
// v.UsedClauses. duringUndo disables the generation of new implications and
// conflict analysis, per the undo-propagation contract in §4.7.
func (s *SatState) recheckUsedClauses(v *Variable, duringUndo bool) bool {
	for _, c := range v.UsedClauses {
		if !c.NeedsChecking || c.IsSubsumed {
			continue
		}
		if !s.examineClause(c, duringUndo) {
			return false
		}
	}
	return true
}

// examineClause re-examines a single flagged clause. See scanClause for the
// element walk; this function applies the watch-invariant fast path and
// dispatches on the scan's classification.
func (s *SatState) examineClause(c *Clause, duringUndo bool) bool {
	if c.Watch1 != c.Watch2 {
		w1, w2 := c.Literals[c.Watch1], c.Literals[c.Watch2]
		if !w1.Set() && !w2.Set() {
			c.NeedsChecking = false
			return true
		}
	}

	kind, a, b := scanClause(c)
	switch kind {
	case kindSubsumed:
		c.IsSubsumed = true
		c.NeedsChecking = false
		return true

	case kindMulti:
		c.Watch1, c.Watch2 = a, b
		c.IsSubsumed = false
		c.NeedsChecking = false
		return true

	case kindUnit:
		if duringUndo {
			// The clause would now imply its single free literal, but undo
			// must not re-enter propagation. Leave it flagged: the next
			// real propagation pass (from Decide or AssertClause) will
			// pick it up and imply correctly.
			return true
		}
		c.IsSubsumed = true
		s.imply(c.Literals[a], c)
		return true

	default: // kindConflict
		if duringUndo {
			// Undoing can only free variables, never falsify new ones, so
			// this branch is unreachable in practice; treat it as a no-op
			// rather than entering conflict analysis during undo.
			return true
		}
		s.analyze(c)
		return false
	}
}

// imply forces lit true with justifying clause c, records it on the
// implications sequence at the position that preserves non-decreasing
// decision-level order, and re-flags every non-subsumed clause that
// mentions the variable.
func (s *SatState) imply(lit *Literal, c *Clause) {
	v := lit.owner
	v.IsSet = true
	v.SetSign = lit.IsPositive()
	v.ImplicationClause = c

	level := 1
	if len(c.Literals) > 1 {
		level = 0
		for _, other := range c.Literals {
			if other == lit {
				continue
			}
			if other.owner.DecisionLevel > level {
				level = other.owner.DecisionLevel
			}
		}
		if level == 0 {
			level = 1
		}
	}
	v.DecisionLevel = level

	s.insertImplication(lit, level)
	s.flagUsedClauses(v)
}

// insertImplication appends lit to s.implications, or performs a backward
// shift insert to keep the sequence non-decreasing in decision level when
// lit's level is below the current tail's.
func (s *SatState) insertImplication(lit *Literal, level int) {
	n := len(s.implications)
	if n == 0 || s.implications[n-1].owner.DecisionLevel <= level {
		s.implications = append(s.implications, lit)
		return
	}
	s.implications = append(s.implications, nil)
	i := n
	for i > 0 && s.implications[i-1].owner.DecisionLevel > level {
		s.implications[i] = s.implications[i-1]
		i--
	}
	s.implications[i] = lit
}

// flagUsedClauses marks every non-subsumed clause mentioning v as needing
// checking, the same way a fresh decision does.
func (s *SatState) flagUsedClauses(v *Variable) {
	for _, c := range v.UsedClauses {
		if !c.IsSubsumed {
			c.NeedsChecking = true
		}
	}
}
