package airnet

import (
	"fmt"
	"sort"
	"strings"
)

// NewElement instantiates the element variant named by kind from its
// parsed coefficients. The set of kinds is closed; an unknown kind is a
// construction error.
func NewElement(kind string, c Coefficients, pts []FanPoint) (Element, error) {
	switch kind {
	case "plr":
		return NewPowerLaw(c)
	case "dwc":
		return NewDuct(c)
	case "qfr":
		return NewQuadratic(c)
	case "dor":
		return NewDoorway(c)
	case "cfr":
		return NewConstantFlow(c)
	case "fan":
		return NewFan(c, pts)
	case "cpf":
		return NewConstantPowerFan(c)
	case "ckv":
		return NewCheckValve(c)
	case "prv":
		return NewReliefValve(c)
	}
	return nil, fmt.Errorf("unknown element type %q", kind)
}

// Model is the assembled airflow network: nodes and elements keyed by
// name, links binding them, and the dense variable-node indexing the
// outer solver assembles its system over.
type Model struct {
	Title    string
	Nodes    map[string]*Node
	Links    []*Link
	Elements map[string]Element

	// VariableNodes holds the variable nodes in index order; Size is its
	// length and the dimension of the solver's matrix.
	VariableNodes []*Node
	Size          int

	nodeOrder []string // insertion order, for stable index assignment
}

// NewModel builds a model from a finite record sequence in two passes:
// nodes and elements are materialized first, then links are resolved by
// name. A link referencing an undeclared node or element is a fatal
// error. A duplicate node name overwrites the earlier node. Links with
// identical endpoints are not rejected.
func NewModel(records []Record) (m *Model, err error) {
	m = &Model{
		Nodes:    make(map[string]*Node),
		Elements: make(map[string]Element),
	}
	var deferred []LinkRecord
	for _, rec := range records {
		switch rec.Type {
		case TitleInput:
			m.Title = rec.Title
		case NodeInput:
			nr := rec.Node
			n := NewNode(nr.Name)
			n.Variable = nr.Kind != "c"
			n.Height = nr.Ht
			n.Temperature = nr.Temp
			n.Pressure = nr.Pres
			if _, ok := m.Nodes[nr.Name]; !ok {
				m.nodeOrder = append(m.nodeOrder, nr.Name)
			}
			m.Nodes[nr.Name] = n
		case ElementInput:
			er := rec.Element
			var e Element
			if e, err = NewElement(er.Kind, er.Coeffs, er.Points); err != nil {
				return nil, err
			}
			m.Elements[er.Name] = e
		case LinkInput:
			deferred = append(deferred, rec.Link)
		}
	}
	for _, lr := range deferred {
		node0, ok := m.Nodes[lr.Node0]
		if !ok {
			return nil, &UnresolvedReferenceError{Link: lr.Name, Kind: "node", Name: lr.Node0}
		}
		node1, ok := m.Nodes[lr.Node1]
		if !ok {
			return nil, &UnresolvedReferenceError{Link: lr.Name, Kind: "node", Name: lr.Node1}
		}
		elem, ok := m.Elements[lr.Elem]
		if !ok {
			return nil, &UnresolvedReferenceError{Link: lr.Name, Kind: "element", Name: lr.Elem}
		}
		l := NewLink(lr.Name, node0, lr.Ht0, node1, lr.Ht1, elem)
		l.Wind = lr.Wind
		l.WPMod = lr.WPMod
		m.Links = append(m.Links, l)
	}
	// Matrix dimension: dense 0-based indices over the variable nodes in
	// declaration order.
	for _, name := range m.nodeOrder {
		node := m.Nodes[name]
		if node.Variable {
			node.Index = m.Size
			m.VariableNodes = append(m.VariableNodes, node)
			m.Size++
		}
	}
	return
}

// SetProperties recomputes the thermophysical properties of every
// variable node from its current temperature and pressure. Call it after
// each solver pressure update and before any element evaluation. Fixed
// boundary nodes are the caller's to refresh via Node.SetProperties.
func (m *Model) SetProperties() {
	for _, node := range m.VariableNodes {
		node.SetProperties()
	}
}

// Summary reports element-type counts, node and link counts, and the
// matrix dimension.
func (m *Model) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n\nElements:\n=========\n", m.Title)
	counts := make(map[string]int)
	for _, e := range m.Elements {
		counts[e.Type()]++
	}
	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(&b, "%s: %d\n", kind, counts[kind])
	}
	fmt.Fprintf(&b, "\nNodes: %d\n\nLinks: %d\n", len(m.Nodes), len(m.Links))
	fmt.Fprintf(&b, "\nSystem size: %d x %d\n", m.Size, m.Size)
	return b.String()
}
