// Package cdclcore_test drives internal/cdcl end to end through the same
// decide/undo/assert cycle cmd/cdclcore's solve loop uses, against small
// hand-verified instances, without going through the command itself.
package cdclcore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bramvdb/cdclcore/internal/cdcl"
	"github.com/bramvdb/cdclcore/internal/parsers"
)

// status mirrors cmd/cdclcore's own status type; duplicated here since that
// command's types are unexported and this test wants to stay a pure
// consumer of the library's public surface.
type status int

const (
	statusSat status = iota
	statusUnsat
	statusUnknown
)

func solve(s *cdcl.SatState, maxDecisions int) status {
	decisions := 0
	for {
		if s.ConflictExists() {
			if s.AtStartLevel() && s.PendingAssertionClause() == nil {
				return statusUnsat
			}
			if s.AtAssertionLevel() {
				s.AssertClause()
			} else {
				s.UndoDecide()
			}
			continue
		}

		free := 0
		for i := 1; i <= s.NumVariables(); i++ {
			if !s.VarByIndex(i).Instantiated() {
				free = i
				break
			}
		}
		if free == 0 {
			return statusSat
		}

		decisions++
		if maxDecisions > 0 && decisions > maxDecisions {
			return statusUnknown
		}
		s.Decide(free)
	}
}

func checkModel(t *testing.T, s *cdcl.SatState) {
	t.Helper()
	for i := 1; i <= s.NumClauses(); i++ {
		c := s.ClauseByIndex(i)
		ok := false
		for _, lit := range c.Literals {
			v := s.VarByIndex(lit.VarID())
			if v.Instantiated() && v.SetSign == lit.IsPositive() {
				ok = true
				break
			}
		}
		require.Truef(t, ok, "clause %d (%s) is not satisfied by the final assignment", i, c)
	}
}

func TestSolve_satisfiableInstance(t *testing.T) {
	s := cdcl.NewSatState()
	require.NoError(t, parsers.LoadDIMACSString("p cnf 2 2\n1 2 0\n1 -2 0\n", s))

	got := solve(s, 0)

	require.Equal(t, statusSat, got)
	checkModel(t, s)
}

func TestSolve_unsatisfiableInstance(t *testing.T) {
	s := cdcl.NewSatState()
	require.NoError(t, parsers.LoadDIMACSString(
		"p cnf 2 4\n1 2 0\n-1 2 0\n1 -2 0\n-1 -2 0\n", s))

	got := solve(s, 0)

	require.Equal(t, statusUnsat, got)
}

func TestSolve_largerSatisfiableInstance(t *testing.T) {
	// (p∨q∨r) ∧ (¬p∨s) ∧ (¬s∨¬r) ∧ (¬q∨¬p): satisfiable, e.g. p=false,
	// q=false, r=true, s=false.
	s := cdcl.NewSatState()
	require.NoError(t, parsers.LoadDIMACSString(
		"p cnf 4 4\n1 2 3 0\n-1 4 0\n-4 -3 0\n-2 -1 0\n", s))

	got := solve(s, 0)

	require.Equal(t, statusSat, got)
	checkModel(t, s)
}

func TestSolve_respectsMaxDecisions(t *testing.T) {
	// The single clause is subsumed after the first decision, leaving the
	// other two variables free and irrelevant: solve still decides them in
	// order since it has no notion of relevance, so a budget of 2 decisions
	// is exhausted one variable short of a full assignment.
	s := cdcl.NewSatState()
	require.NoError(t, parsers.LoadDIMACSString("p cnf 3 1\n1 2 3 0\n", s))

	got := solve(s, 2)

	require.Equal(t, statusUnknown, got)
}
