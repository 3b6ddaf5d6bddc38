package airnet

// Link connects two nodes through a single flow element. Many links may
// share one element instance; links never own their nodes.
type Link struct {
	Name  string
	Node0 *Node
	Node1 *Node
	Ht0   float64 // opening height relative to Node0's height (m)
	Ht1   float64 // opening height relative to Node1's height (m)
	Elem  Element
	Wind  string  // wind pressure specification name, "" when absent
	WPMod float64 // wind pressure modifier
	Mult  float64 // flow multiplier
}

// NewLink binds two resolved nodes through an element with unit flow
// multiplier and no wind specification.
func NewLink(name string, node0 *Node, ht0 float64, node1 *Node, ht1 float64, elem Element) (l *Link) {
	l = &Link{
		Name:  name,
		Node0: node0,
		Node1: node1,
		Ht0:   ht0,
		Ht1:   ht1,
		Elem:  elem,
		Mult:  1.0,
	}
	return
}
