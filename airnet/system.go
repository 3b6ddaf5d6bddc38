package airnet

import (
	"github.com/james-bowman/sparse"
)

// JacobianPattern returns the Size x Size occupancy pattern of the
// nonlinear system's Jacobian: a unit entry wherever a link couples two
// variable nodes, plus the diagonal of every variable node touched by a
// link. The outer solver fills values per iteration; only the sparsity
// structure is owned here. The result satisfies gonum's mat.Matrix.
func (m *Model) JacobianPattern() *sparse.DOK {
	dok := sparse.NewDOK(m.Size, m.Size)
	for _, l := range m.Links {
		i, j := -1, -1
		if l.Node0.Variable {
			i = l.Node0.Index
		}
		if l.Node1.Variable {
			j = l.Node1.Index
		}
		if i >= 0 {
			dok.Set(i, i, 1)
		}
		if j >= 0 {
			dok.Set(j, j, 1)
		}
		if i >= 0 && j >= 0 {
			dok.Set(i, j, 1)
			dok.Set(j, i, 1)
		}
	}
	return dok
}
