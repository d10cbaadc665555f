package interpreter

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/leonardinius/golox/internal/loxerrors"
	"github.com/leonardinius/golox/internal/token"
	"github.com/leonardinius/golox/internal/value"
)

// ScopeID addresses a scope inside an Environment.
type ScopeID int

const (
	// NoScope is the enclosing scope of the global scope.
	NoScope ScopeID = -1
	// GlobalScope is always the first scope of an Environment.
	GlobalScope ScopeID = 0
)

type scope struct {
	enclosing ScopeID
	values    map[string]value.Value
}

// Environment is an arena of lexical scopes. Each scope links to its
// enclosing scope by id; lookups and assignments walk that chain from the
// current scope up to the global scope.
//
// Blocks nest strictly, so scopes are allocated and released in LIFO order:
// Nest pushes a scope, Restore pops everything allocated after the scope it
// returns to.
type Environment struct {
	scopes  []scope
	current ScopeID
}

func NewEnvironment() *Environment {
	return &Environment{
		scopes:  []scope{{enclosing: NoScope}},
		current: GlobalScope,
	}
}

// Define binds name in the current scope, overwriting any previous binding
// of the same name in that scope.
func (e *Environment) Define(name string, v value.Value) {
	s := &e.scopes[e.current]
	if s.values == nil {
		s.values = make(map[string]value.Value)
	}
	s.values[name] = v
}

func (e *Environment) Get(name *token.Token) (value.Value, error) {
	for id := e.current; id != NoScope; id = e.scopes[id].enclosing {
		if v, ok := e.scopes[id].values[name.Lexeme]; ok {
			return v, nil
		}
	}

	return nil, e.undefinedVariable(name)
}

// Assign rebinds name in the nearest scope that defines it.
func (e *Environment) Assign(name *token.Token, v value.Value) error {
	for id := e.current; id != NoScope; id = e.scopes[id].enclosing {
		s := &e.scopes[id]
		if _, ok := s.values[name.Lexeme]; ok {
			s.values[name.Lexeme] = v
			return nil
		}
	}

	return e.undefinedVariable(name)
}

// Nest opens a child of the current scope and makes it current.
// It returns the previously current scope, to be handed to Restore.
func (e *Environment) Nest() ScopeID {
	previous := e.current
	e.scopes = append(e.scopes, scope{enclosing: previous})
	e.current = ScopeID(len(e.scopes) - 1)
	return previous
}

// Restore makes previous the current scope and releases every scope
// allocated after it.
func (e *Environment) Restore(previous ScopeID) {
	if previous < GlobalScope || int(previous) >= len(e.scopes) {
		panic(fmt.Sprintf("restore of unknown scope %d", previous))
	}

	clear(e.scopes[previous+1:])
	e.scopes = e.scopes[:previous+1]
	e.current = previous
}

// Current returns the id of the current scope.
func (e *Environment) Current() ScopeID {
	return e.current
}

// Len returns the number of live scopes.
func (e *Environment) Len() int {
	return len(e.scopes)
}

func (e *Environment) undefinedVariable(name *token.Token) error {
	return loxerrors.NewRuntimeError(name, loxerrors.ErrRuntimeUndefinedVariableName(name.Lexeme))
}

// String renders the scope chain from the current scope outwards,
// e.g. "{a=2} -> {a=1,b=true}".
func (e *Environment) String() string {
	w := new(strings.Builder)

	for id := e.current; id != NoScope; id = e.scopes[id].enclosing {
		values := e.scopes[id].values
		keys := maps.Keys(values)
		slices.Sort(keys)

		w.WriteString("{")
		for i, k := range keys {
			if i > 0 {
				w.WriteString(",")
			}
			fmt.Fprintf(w, "%s=%#v", k, values[k])
		}
		w.WriteString("}")
		if e.scopes[id].enclosing != NoScope {
			w.WriteString(" -> ")
		}
	}

	return w.String()
}

var _ fmt.Stringer = (*Environment)(nil)
