package cdcl

// AtAssertionLevel reports whether the engine's current decision level
// matches the pending assertion clause's assertion level. It is meaningless
// (and returns false) when no clause is pending.
func (s *SatState) AtAssertionLevel() bool {
	return s.assertionClauseLevel == s.CurrentLevel()
}

// AtStartLevel reports whether no decision currently stands.
func (s *SatState) AtStartLevel() bool {
	return len(s.decisions) == 0
}

// ConflictExists reports whether a conflict has been found by unit
// resolution that has not yet been cleared by AssertClause. Combined with
// AtStartLevel and a nil pending clause, this signals that the formula is
// unsatisfiable (§7): no asserting clause is ever produced for a conflict at
// the start level, so there is nothing left for AssertClause to install.
func (s *SatState) ConflictExists() bool {
	return s.conflictPending
}

// PendingAssertionClause returns the clause produced by the last conflict
// analysis, or nil if there is none pending or the conflict arose at the
// start level (formula unsatisfiable).
func (s *SatState) PendingAssertionClause() *Clause {
	return s.assertionClause
}

// SubsumedClause reports whether c currently has an asserted literal. A nil
// clause is never subsumed.
func (s *SatState) SubsumedClause(c *Clause) bool {
	if c == nil {
		return false
	}
	return c.IsSubsumed
}

// IrrelevantVar reports whether every clause mentioning v is either
// subsumed or itself learned — i.e. v no longer constrains anything beyond
// clauses that would remain true regardless of v's further history. A nil
// variable is never irrelevant.
func (s *SatState) IrrelevantVar(v *Variable) bool {
	if v == nil {
		return false
	}
	for _, c := range v.UsedClauses {
		if !c.IsSubsumed && !c.WasGenerated {
			return false
		}
	}
	return true
}
