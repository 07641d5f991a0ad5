package cdcl

// AssertClause installs the pending learned clause produced by the last
// conflict and resumes propagation. The engine must be at the clause's
// assertion level (AtAssertionLevel) and a clause must actually be pending;
// otherwise this is a precondition violation and AssertClause returns nil
// without mutating any state.
//
// It returns nil on success, or a new learned asserting clause if
// propagation conflicts again immediately after installation. A conflict at
// the start level produces no asserting clause, so AssertClause returns nil
// in that case too; ConflictExists still reports the conflict.
func (s *SatState) AssertClause() *Clause {
	if s.assertionClause == nil || !s.AtAssertionLevel() {
		return nil
	}

	c := s.assertionClause
	c.Index = len(s.clauses) + 1
	c.Watch1, c.Watch2 = 0, 0
	c.WasGenerated = true
	c.NeedsChecking = true
	c.IsSubsumed = false

	s.registerUsedClause(c)
	s.clauses = append(s.clauses, c)
	s.assertionClauseCount++

	s.assertionClause = nil
	s.assertionClauseLevel = 0
	s.conflictPending = false

	// As in AddClause, the freshly installed clause's variables are
	// already set (that is the point of an asserting clause): nothing new
	// crosses the decisions/implications cursor, so propagate alone would
	// never look at it. Examine it directly first.
	if !s.examineClause(c, false) {
		return s.assertionClause
	}
	if !s.propagate() {
		return s.assertionClause
	}
	return nil
}
