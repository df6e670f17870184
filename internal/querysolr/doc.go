// Package querysolr renders criterion trees into Solr's standard query
// syntax.
//
// ARCHITECTURE:
//
//	[criterion tree] → [Registry] → "field:\"value\" AND (...)"
//	[query.Query]    → [Converter] → q / fq / start / rows request params
//
// VISITOR DISPATCH:
//
// A Registry holds an ordered list of Visitors. Each visitor declares which
// criterion type and operator it handles (CanVisit) and renders that node
// (Visit). The registry hands every node to the first visitor that accepts
// it and passes itself down as the SubVisitor, so logical visitors render
// their children through the same dispatch. A node no visitor accepts is an
// error (ErrNoVisitor), never silently dropped: a dropped filter condition
// could widen a search beyond what the caller is allowed to see.
//
// OUTPUT SHAPE:
//
//	equality     field:"value"
//	membership   (field:"v1" OR field:"v2")     id criteria
//	             field:("v1" OR "v2")           custom fields
//	ranges       field:[10 TO *]  field:{* TO 20}
//	negation     NOT (clause)
//	logical      (a AND b)  (a OR b)
//
// Render omits the parentheses of a root AND/OR.
//
// Registries and visitors are immutable after construction and safe for
// concurrent use.
package querysolr
