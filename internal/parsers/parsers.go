// Package parsers adapts the external DIMACS CNF reader
// (github.com/rhartert/dimacs) to internal/cdcl, and reads the DIMACS-style
// model files used by this module's end-to-end tests.
package parsers

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rhartert/dimacs"

	"github.com/bramvdb/cdclcore/internal/cdcl"
)

func open(filename string, gzipped bool) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	if !gzipped {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return gz, nil
}

// callbackBuilder adapts a pair of closures to dimacs.Builder, so LoadDIMACS
// and ReadModels can each describe their own handling of the problem line
// and clause lines inline instead of each needing a dedicated named struct.
// Comment lines are always ignored: neither caller has any use for them.
type callbackBuilder struct {
	onProblem func(problem string, nVars, nClauses int) error
	onClause  func(lits []int) error
}

func (b *callbackBuilder) Problem(problem string, nVars, nClauses int) error {
	return b.onProblem(problem, nVars, nClauses)
}

func (b *callbackBuilder) Clause(lits []int) error {
	return b.onClause(lits)
}

func (b *callbackBuilder) Comment(_ string) error {
	return nil
}

// decodeCNF feeds r through the external DIMACS reader, installing every
// declared variable and clause into state via AddVariable/AddClause. A
// malformed header is surfaced as an error by the underlying dimacs package
// before any variable reaches the engine; an error on a later clause line
// arrives after the header's variables and the earlier clauses have been
// installed. An out-of-range clause literal is surfaced by the engine itself
// as a *cdcl.LiteralError.
func decodeCNF(r io.Reader, state *cdcl.SatState) error {
	b := &callbackBuilder{
		onProblem: func(problem string, nVars, _ int) error {
			if problem != "cnf" {
				return fmt.Errorf("instance of type %q are not supported", problem)
			}
			for i := 0; i < nVars; i++ {
				state.AddVariable()
			}
			return nil
		},
		onClause: func(lits []int) error {
			clause := make([]int, len(lits))
			copy(clause, lits)
			return state.AddClause(clause)
		},
	}
	return dimacs.ReadBuilder(r, b)
}

// LoadDIMACS parses the DIMACS CNF file at filename and installs its
// variables and clauses into state.
func LoadDIMACS(filename string, gzipped bool, state *cdcl.SatState) error {
	r, err := open(filename, gzipped)
	if err != nil {
		return fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()
	return decodeCNF(r, state)
}

// LoadDIMACSString parses DIMACS CNF text directly, for tests and other
// in-memory callers that have no file to open.
func LoadDIMACSString(text string, state *cdcl.SatState) error {
	return decodeCNF(strings.NewReader(text), state)
}

// ReadModels returns the list of models contained in the given DIMACS-style
// model file: one model per line, a space-separated list of signed literals
// terminated by 0, positive meaning true. Model files carry no problem line,
// unlike a CNF instance, so this builds its own callbackBuilder rather than
// reusing decodeCNF.
func ReadModels(filename string) ([][]bool, error) {
	r, err := open(filename, false)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	var models [][]bool
	b := &callbackBuilder{
		onProblem: func(string, int, int) error {
			return fmt.Errorf("model files should not have a problem line")
		},
		onClause: func(lits []int) error {
			model := make([]bool, len(lits))
			for i, l := range lits {
				model[i] = l > 0
			}
			models = append(models, model)
			return nil
		},
	}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return models, nil
}
