package cdcl

import "fmt"

// Literal is one of the two literal objects owned by a Variable: the
// positive phase (Index > 0) or the negative phase (Index < 0). There are
// exactly 2n literal objects for n variables and LiteralByIndex returns the
// same object for the same signed index throughout the engine's lifetime.
type Literal struct {
	// Index is the signed DIMACS-style literal index: positive for the
	// variable's positive phase, negative for its negation. |Index| is the
	// owning variable's 1-based ID.
	Index int

	// owner is the variable this literal belongs to. Every literal
	// permanently references its variable.
	owner *Variable
}

// Var returns the variable this literal belongs to.
func (l *Literal) Var() *Variable {
	return l.owner
}

// VarID returns the ID of the literal's variable.
func (l *Literal) VarID() int {
	return l.owner.ID
}

// IsPositive returns true if the literal is the positive phase of its
// variable.
func (l *Literal) IsPositive() bool {
	return l.Index > 0
}

// Opposite returns the other phase of the same variable.
func (l *Literal) Opposite() *Literal {
	if l.Index > 0 {
		return l.owner.negLiteral
	}
	return l.owner.posLiteral
}

// Set reports whether the literal's variable is currently instantiated,
// irrespective of phase.
func (l *Literal) Set() bool {
	return l.owner.IsSet
}

// Asserted reports whether the literal is currently true: its variable is
// set and its sign matches the variable's assigned phase.
func (l *Literal) Asserted() bool {
	return l.owner.IsSet && l.owner.SetSign == l.IsPositive()
}

// Resolved reports whether the literal is currently false: its variable is
// set and its sign is the opposite of the variable's assigned phase.
func (l *Literal) Resolved() bool {
	return l.owner.IsSet && l.owner.SetSign != l.IsPositive()
}

func (l *Literal) String() string {
	return fmt.Sprintf("%d", l.Index)
}
