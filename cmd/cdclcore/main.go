// Command cdclcore is a minimal demonstration driver for internal/cdcl: it
// parses a DIMACS CNF instance, runs a bare CDCL search loop built entirely
// out of the engine's public operations, and reports SAT/UNSAT. It is
// deliberately as small as it can be — variable selection, restarts, and
// clause deletion are all non-goals of the library this command exercises —
// the same role the teacher's main.go plays for its own solver.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rhartert/yagh"

	"github.com/bramvdb/cdclcore/internal/cdcl"
	"github.com/bramvdb/cdclcore/internal/parsers"
)

var flagCPUProfile = flag.Bool("cpuprof", false, "save pprof CPU profile in cpuprof")
var flagMemProfile = flag.Bool("memprof", false, "save pprof memory profile in memprof")
var flagCheckModels = flag.String("check-models", "", "verify the result against a DIMACS models file")
var flagMaxDecisions = flag.Int("max-decisions", 0, "abort after this many decisions (0 means unbounded)")

type config struct {
	instanceFile string
	memProfile   bool
	cpuProfile   bool
	checkModels  string
	maxDecisions int
}

func parseConfig() (*config, error) {
	flag.Parse()
	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
		checkModels:  *flagCheckModels,
		maxDecisions: *flagMaxDecisions,
	}, nil
}

// status mirrors the three outcomes the demo loop can report. The engine
// itself has no notion of "unknown" — that only arises here, from the
// driver's own decision budget, a concern the library does not own.
type status int

const (
	statusUnknown status = iota
	statusSat
	statusUnsat
)

func (s status) String() string {
	switch s {
	case statusSat:
		return "SATISFIABLE"
	case statusUnsat:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

// pickFreeVariable returns the lowest-indexed free variable, chosen via a
// fresh yagh min-heap over the currently free variables. Variable-ordering
// heuristics are out of scope for internal/cdcl (§1), so this picks by
// declaration order only — no activity, no phase saving — and rebuilds the
// heap every call rather than threading undo notifications back from the
// engine, which owns no concept of an external variable order.
func pickFreeVariable(s *cdcl.SatState) (int, bool) {
	n := s.NumVariables()
	h := yagh.New[float64](n)
	h.GrowBy(n)

	any := false
	for i := 1; i <= n; i++ {
		if !s.VarByIndex(i).Instantiated() {
			h.Put(i-1, float64(i-1))
			any = true
		}
	}
	if !any {
		return 0, false
	}
	item, ok := h.Pop()
	if !ok {
		return 0, false
	}
	return item.Elem + 1, true
}

// solve drives the engine to a fixed point: backtrack-and-learn on conflict,
// decide the next free variable otherwise. This is the "typical cycle"
// described in the library's overview, expressed entirely through public
// operations.
func solve(s *cdcl.SatState, maxDecisions int) (status, int) {
	decisions := 0
	for {
		if s.ConflictExists() {
			if s.AtStartLevel() && s.PendingAssertionClause() == nil {
				return statusUnsat, decisions
			}
			if s.AtAssertionLevel() {
				s.AssertClause()
			} else {
				s.UndoDecide()
			}
			continue
		}

		lit, ok := pickFreeVariable(s)
		if !ok {
			return statusSat, decisions
		}

		decisions++
		if maxDecisions > 0 && decisions > maxDecisions {
			return statusUnknown, decisions
		}
		s.Decide(lit)
	}
}

func model(s *cdcl.SatState) []bool {
	m := make([]bool, s.NumVariables())
	for i := range m {
		v := s.VarByIndex(i + 1)
		m[i] = v.Instantiated() && v.SetSign
	}
	return m
}

func checkModel(s *cdcl.SatState, filename string, got []bool) error {
	models, err := parsers.ReadModels(filename)
	if err != nil {
		return fmt.Errorf("could not read models: %w", err)
	}
	for _, want := range models {
		if len(want) != len(got) {
			continue
		}
		match := true
		for i := range want {
			if want[i] != got[i] {
				match = false
				break
			}
		}
		if match {
			return nil
		}
	}
	return fmt.Errorf("model not found among %d expected models", len(models))
}

func run(cfg *config) error {
	state := cdcl.NewSatState()
	if err := parsers.LoadDIMACS(cfg.instanceFile, false, state); err != nil {
		return fmt.Errorf("could not parse instance: %s", err)
	}

	fmt.Printf("c variables: %d\n", state.NumVariables())
	fmt.Printf("c clauses:   %d\n", state.NumClauses())

	t := time.Now()
	result, decisions := solve(state, cfg.maxDecisions)
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c decisions:  %d\n", decisions)
	fmt.Printf("c learned:    %d\n", state.LearnedClauseCount())
	fmt.Printf("c status:     %s\n", result)

	if result == statusSat && cfg.checkModels != "" {
		if err := checkModel(state, cfg.checkModels, model(state)); err != nil {
			return fmt.Errorf("model check failed: %w", err)
		}
		fmt.Println("c model:      verified")
	}

	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
