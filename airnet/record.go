package airnet

// InputType tags a parsed network input record.
type InputType int

const (
	TitleInput InputType = iota
	NodeInput
	ElementInput
	LinkInput
)

// Record is one tagged record from a network description file. Only the
// field matching Type is populated.
type Record struct {
	Type    InputType
	Title   string
	Node    NodeRecord
	Element ElementRecord
	Link    LinkRecord
}

// NodeRecord declares a node. Kind "c" is a fixed (controlled) boundary
// node carrying Pres; any other kind is a variable node whose pressure is
// solved for.
type NodeRecord struct {
	Name string
	Kind string // "v", "c" or "a"
	Ht   float64
	Temp float64 // K
	Pres float64 // Pa, gauge; meaningful for fixed nodes only
}

// ElementRecord declares a flow element of the given kind with its named
// coefficients; Points carries fan performance segments when Kind is
// "fan".
type ElementRecord struct {
	Kind   string
	Name   string
	Coeffs Coefficients
	Points []FanPoint
}

// LinkRecord declares a link by node and element names, resolved during
// model assembly.
type LinkRecord struct {
	Name  string
	Node0 string
	Ht0   float64
	Node1 string
	Ht1   float64
	Elem  string
	Wind  string // "" when the link has no wind specification
	WPMod float64
}
