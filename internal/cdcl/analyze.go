package cdcl

// analyze performs First-UIP conflict analysis on conflict clause conf,
// populating assertionClause and assertionClauseLevel (or leaving
// assertionClause nil when the conflict sits at the start level, signaling
// an unsatisfiable formula). conflictPending is always set to true: the
// driver distinguishes the two outcomes via AtStartLevel together with a nil
// PendingAssertionClause().
func (s *SatState) analyze(conf *Clause) {
	s.conflictPending = true

	level := 0
	for _, lit := range conf.Literals {
		if lit.owner.DecisionLevel > level {
			level = lit.owner.DecisionLevel
		}
	}

	if level <= 1 {
		s.assertionClause = nil
		s.assertionClauseLevel = 0
		return
	}

	// w is the working cut, tracked by each variable's currently-asserted
	// literal rather than the polarity the clause literal was written with.
	// s.seen dedupes membership; assertionUse marks "still in the cut" as
	// opposed to "resolved away". Opposite() is taken once more at the end
	// to turn each survivor back into the falsified form a learned clause
	// needs.
	var w []*Literal
	seed := func(lit *Literal) {
		lit = lit.Opposite()
		if !s.seen.contains(lit.owner.ID) {
			s.seen.add(lit.owner.ID)
			lit.owner.assertionUse = true
			w = append(w, lit)
		}
	}
	for _, lit := range conf.Literals {
		seed(lit)
	}

	for countAtLevel(w, level) > 1 {
		x := pickResolvable(w, level)
		x.owner.assertionUse = false
		for _, lit := range x.owner.ImplicationClause.Literals {
			seed(lit)
		}
	}

	learned := make([]*Literal, 0, len(w))
	assertionLevel := 0
	for _, lit := range w {
		if !lit.owner.assertionUse {
			continue
		}
		learned = append(learned, lit.Opposite())
		if d := lit.owner.DecisionLevel; d < level && d > assertionLevel {
			assertionLevel = d
		}
	}
	if assertionLevel == 0 {
		assertionLevel = 1
	}

	for _, lit := range w {
		lit.owner.assertionUse = false
	}
	s.seen.clear()

	s.assertionClause = &Clause{Literals: learned, WasGenerated: true}
	s.assertionClauseLevel = assertionLevel
}

// countAtLevel counts the literals still in the cut (assertionUse) whose
// variable sits at the given decision level.
func countAtLevel(w []*Literal, level int) int {
	n := 0
	for _, lit := range w {
		if lit.owner.assertionUse && lit.owner.DecisionLevel == level {
			n++
		}
	}
	return n
}

// pickResolvable returns a literal still in the cut, at the given decision
// level, whose setting was an implication rather than a decision. One
// always exists when countAtLevel(w, level) > 1: the First-UIP exists
// because at least one literal at level is a decision, which terminates the
// walk once every implication above it has been resolved away.
func pickResolvable(w []*Literal, level int) *Literal {
	for _, lit := range w {
		if lit.owner.assertionUse && lit.owner.DecisionLevel == level && lit.owner.ImplicationClause != nil {
			return lit
		}
	}
	return nil
}
