package airnet

import (
	"errors"
	"fmt"
	"strings"
)

// Element is the constitutive law bound to a link: given the link's
// endpoint states and a trial pressure drop (Pa, positive driving flow
// from Node0 toward Node1), it produces mass flow and the analytic
// derivative a Newton-type solver linearizes with.
type Element interface {
	Type() string
	Calculate(link *Link, pdrop float64) (FlowResult, error)
}

// Linearizer is implemented by elements that can supply an initialization
// slope before any trial pressure drop exists.
type Linearizer interface {
	Linearize(link *Link) float64
}

// FlowResult reports one or two flow solutions at a trial pressure drop.
// Branches is 2 only for bidirectional buoyancy-driven flow; Flow2 and
// DFlow2 are zero otherwise.
type FlowResult struct {
	Branches int
	Flow1    float64 // kg/s
	Flow2    float64 // kg/s
	DFlow1   float64 // d(Flow1)/d(pdrop)
	DFlow2   float64 // d(Flow2)/d(pdrop)
}

// ErrUnimplemented reports invocation of a flow law that cannot be
// evaluated for the element's configuration. Callers must treat it as
// fatal; the law never substitutes a zero flow.
var ErrUnimplemented = errors.New("element law not implemented")

// MissingArgumentError reports a required element coefficient absent
// under every accepted alias.
type MissingArgumentError struct {
	Kind    string
	Aliases []string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("element type %q requires a %q field (aliases: %s)",
		e.Kind, e.Aliases[0], strings.Join(e.Aliases, ", "))
}

// UnresolvedReferenceError reports a link naming a node or element that
// was never declared.
type UnresolvedReferenceError struct {
	Link string
	Kind string // "node" or "element"
	Name string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("link %q references undeclared %s %q", e.Link, e.Kind, e.Name)
}

// Coefficients carries an element's named numeric fields as parsed.
// Each constructor resolves its parameters through a per-field alias
// table: the reader's short keys and the element catalogue's long names
// are both accepted.
type Coefficients map[string]float64

func (c Coefficients) required(kind string, aliases ...string) (float64, error) {
	for _, a := range aliases {
		if v, ok := c[a]; ok {
			return v, nil
		}
	}
	return 0, &MissingArgumentError{Kind: kind, Aliases: aliases}
}

func (c Coefficients) optional(def float64, aliases ...string) float64 {
	for _, a := range aliases {
		if v, ok := c[a]; ok {
			return v
		}
	}
	return def
}
