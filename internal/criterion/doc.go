// Package criterion provides the abstract criterion tree used to express
// content and location search filters.
//
// A criterion tree is independent of the search backend. Backends walk the
// tree and render it into their native syntax (see internal/querysolr).
//
// SEALED INTERFACE:
//
// Criterion is a sealed interface using the marker method pattern. Only types
// in this package implement it, so backends can rely on an exhaustive set of
// node types:
//
//	switch c := node.(type) {
//	case *LogicalAnd:
//	    // render children joined with AND
//	case *ContentID:
//	    // render id membership
//	}
//
// TREE SHAPE:
//
// Logical nodes (LogicalAnd, LogicalOr) hold an ordered, non-empty list of
// children. LogicalNot holds exactly one child. Leaf nodes carry an Operator
// and their value(s). Trees are finite and acyclic; Validate reports any node
// that breaks these rules.
//
// OPERATORS:
//
// Each leaf type accepts a fixed set of operators. An empty operator means
// "unspecified" and is read as IN by leaf types that support membership.
package criterion
