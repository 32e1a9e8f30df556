// Package decay provides core primitives for the linear decay equation
// u'(t) = -a*u(t), u(0) = I.
//
// The package defines the fundamental types shared by the solver and the
// experiment layers:
//
//   - [Params]: problem and scheme configuration
//   - [Mesh]: uniform time mesh
//   - [Solution]: values aligned index-for-index with a mesh
//   - [Result]: one solve, including the realized horizon
//
// It also carries the closed-form reference solution ([Exact], [Sample])
// and the discrete L2 error norm ([L2Norm]).
//
// # Purity
//
// Everything in this package is a pure function of its inputs. Nothing
// logs, performs I/O, or keeps state between calls.
package decay
