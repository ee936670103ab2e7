// Package condition evaluates visibleWhen/enabledWhen expressions.
//
// An expression is a disjunction of conjunctions:
//
//	expr   = clause { "||" clause }
//	clause = atom { "&&" atom }
//	atom   = [ "!" ] name
//
// Names come from a fixed set of controller predicates, plus the literals
// "true" and "false" so a JSON boolean gate keeps its meaning. An unknown
// name is false whether or not it is negated. An empty expression is always
// true.
package condition

import "strings"

// State exposes the controller predicates an expression may reference.
type State interface {
	Locked() bool
	Playing() bool
	Offline() bool
	ForwardAvailable() bool
	BackwardAvailable() bool
}

// Atom names accepted in expressions.
const (
	AtomLocked        = "locked"
	AtomUnlocked      = "unlocked"
	AtomIsPlaying     = "isPlaying"
	AtomIsOffline     = "isOffline"
	AtomIsOnline      = "isOnline"
	AtomCanGoForward  = "canGoForward"
	AtomCanGoBackward = "canGoBackward"

	LiteralTrue  = "true"
	LiteralFalse = "false"
)

var literals = map[string]bool{LiteralTrue: true, LiteralFalse: false}

var predicates = map[string]func(State) bool{
	AtomLocked:        func(s State) bool { return s.Locked() },
	AtomUnlocked:      func(s State) bool { return !s.Locked() },
	AtomIsPlaying:     func(s State) bool { return s.Playing() },
	AtomIsOffline:     func(s State) bool { return s.Offline() },
	AtomIsOnline:      func(s State) bool { return !s.Offline() },
	AtomCanGoForward:  func(s State) bool { return s.ForwardAvailable() },
	AtomCanGoBackward: func(s State) bool { return s.BackwardAvailable() },
}

// Evaluate reports whether expr holds for state.
func Evaluate(expr string, state State) bool {
	if strings.TrimSpace(expr) == "" {
		return true
	}

	for _, clause := range strings.Split(expr, "||") {
		if evalClause(clause, state) {
			return true
		}
	}
	return false
}

func evalClause(clause string, state State) bool {
	for _, raw := range strings.Split(clause, "&&") {
		if !evalAtom(raw, state) {
			return false
		}
	}
	return true
}

func evalAtom(raw string, state State) bool {
	name, negated := splitAtom(raw)
	if value, ok := literals[name]; ok {
		return value != negated
	}
	pred, ok := predicates[name]
	if !ok || state == nil {
		return false
	}
	return pred(state) != negated
}

func splitAtom(raw string) (string, bool) {
	atom := strings.TrimSpace(raw)
	negated := false
	if rest, ok := strings.CutPrefix(atom, "!"); ok {
		negated = true
		atom = strings.TrimSpace(rest)
	}
	return atom, negated
}

// Atoms returns the predicate names referenced by expr, without negation, in order.
func Atoms(expr string) []string {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	var out []string
	for _, clause := range strings.Split(expr, "||") {
		for _, raw := range strings.Split(clause, "&&") {
			name, _ := splitAtom(raw)
			out = append(out, name)
		}
	}
	return out
}

// Unknown returns the atoms of expr that are not recognized predicates.
func Unknown(expr string) []string {
	var out []string
	for _, name := range Atoms(expr) {
		if !Known(name) {
			out = append(out, name)
		}
	}
	return out
}

// Known reports whether name is a recognized predicate or literal.
func Known(name string) bool {
	if _, ok := literals[name]; ok {
		return true
	}
	_, ok := predicates[name]
	return ok
}
