package cdcl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddVariable(t *testing.T) {
	s := NewSatState()

	v1 := s.AddVariable()
	v2 := s.AddVariable()

	require.Equal(t, 1, v1)
	require.Equal(t, 2, v2)
	require.Equal(t, 2, s.NumVariables())

	require.NotNil(t, s.VarByIndex(1))
	require.NotNil(t, s.VarByIndex(2))
	require.Nil(t, s.VarByIndex(0))
	require.Nil(t, s.VarByIndex(3))
}

func TestLiteralByIndex(t *testing.T) {
	s := NewSatState()
	s.AddVariable()

	pos := s.LiteralByIndex(1)
	neg := s.LiteralByIndex(-1)

	require.NotNil(t, pos)
	require.NotNil(t, neg)
	require.True(t, pos.IsPositive())
	require.False(t, neg.IsPositive())
	require.Same(t, pos, pos.Opposite().Opposite())
	require.Same(t, neg, pos.Opposite())
	require.Same(t, pos.Var(), neg.Var())

	require.Nil(t, s.LiteralByIndex(0))
	require.Nil(t, s.LiteralByIndex(2))
	require.Nil(t, s.LiteralByIndex(-2))
}

// TestLiteral_oppositeIsOtherPhaseOfSameVariable guards against the
// original implementation's opposite-literal bug (SPEC_FULL.md §12): both
// branches of that function returned the variable's positive literal, so a
// positive literal's opposite came back equal to itself instead of its
// negation. A round trip alone can't catch this (it still lands back on the
// start), so this checks each literal's opposite directly, over two
// variables: it must be its own variable's other phase, never its own phase
// and never the other variable's literal.
func TestLiteral_oppositeIsOtherPhaseOfSameVariable(t *testing.T) {
	s := NewSatState()
	s.AddVariable()
	s.AddVariable()

	pos1, neg1 := s.LiteralByIndex(1), s.LiteralByIndex(-1)
	pos2, neg2 := s.LiteralByIndex(2), s.LiteralByIndex(-2)

	require.Same(t, neg1, pos1.Opposite())
	require.Same(t, pos1, neg1.Opposite())
	require.Same(t, neg2, pos2.Opposite())
	require.Same(t, pos2, neg2.Opposite())

	require.NotSame(t, pos1, pos1.Opposite())
	require.NotSame(t, pos2.Opposite(), pos1)
	require.NotSame(t, neg2.Opposite(), neg1)
}

func TestVariable_usedClauseAccessors(t *testing.T) {
	s := NewSatState()
	s.AddVariable()
	s.AddVariable()
	require.NoError(t, s.AddClause([]int{1, 2}))
	require.NoError(t, s.AddClause([]int{-1, 2}))

	v1 := s.VarByIndex(1)
	require.Equal(t, 2, v1.UsedClauseCount())
	require.Same(t, s.ClauseByIndex(1), v1.UsedClauseAt(0))
	require.Same(t, s.ClauseByIndex(2), v1.UsedClauseAt(1))
	require.Nil(t, v1.UsedClauseAt(-1))
	require.Nil(t, v1.UsedClauseAt(2))

	v2 := s.VarByIndex(2)
	require.Equal(t, 2, v2.UsedClauseCount())
}

func TestAddClause_rejectsOutOfRangeLiteral(t *testing.T) {
	s := NewSatState()
	s.AddVariable()

	err := s.AddClause([]int{1, 2})

	require.Error(t, err)
	var litErr *LiteralError
	require.ErrorAs(t, err, &litErr)
	require.Equal(t, 2, litErr.Literal)
	require.Equal(t, 0, s.NumClauses())
}

func TestAddClause_rejectsZeroLiteral(t *testing.T) {
	s := NewSatState()
	s.AddVariable()

	err := s.AddClause([]int{1, 0})

	require.Error(t, err)
	require.Equal(t, 0, s.NumClauses())
}

func TestAddClause_unitClauseImpliesAtLevelOne(t *testing.T) {
	s := NewSatState()
	s.AddVariable()

	err := s.AddClause([]int{1})
	require.NoError(t, err)

	v := s.VarByIndex(1)
	require.True(t, v.Instantiated())
	require.True(t, v.SetSign)
	require.Equal(t, 1, v.DecisionLevel)
	require.Same(t, s.ClauseByIndex(1), v.ImplicationClause)
}

func TestAddClause_twoUnitClausesConflictAtStartLevel(t *testing.T) {
	s := NewSatState()
	s.AddVariable()

	require.NoError(t, s.AddClause([]int{1}))
	require.NoError(t, s.AddClause([]int{-1}))

	require.True(t, s.ConflictExists())
	require.True(t, s.AtStartLevel())
	require.Nil(t, s.PendingAssertionClause())
}

func TestClauseByIndex(t *testing.T) {
	s := NewSatState()
	s.AddVariable()
	s.AddVariable()
	require.NoError(t, s.AddClause([]int{1, 2}))

	c := s.ClauseByIndex(1)
	require.NotNil(t, c)
	require.Equal(t, 1, c.Index)
	require.Nil(t, s.ClauseByIndex(0))
	require.Nil(t, s.ClauseByIndex(2))
}
