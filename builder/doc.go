// Package builder assembles territory maps declaratively.
//
// A map is a list of Constructor values applied in order by BuildGraph.
// Constructors refer to territories by name; BuildGraph returns the graph
// together with the Index that maps each name to its core.Handle.
//
// The package offers:
//
//   - Primitives:
//     – Territory(name, class): one named node.
//     – Border(a, b), Borders(pairs...): undirected edges between named nodes.
//     – Clique(names...): every pair of the named nodes adjacent.
//     – Compose(cons...): a sequence of constructors as one.
//   - Sample maps:
//     – Turkey(): Constantinople, Ankara, Smyrna as a triangle.
//     – TurkeyRegion(): the Turkish centers plus Sevastopol, Black Sea,
//     Eastern Mediterranean, Armenia and Syria (RegionBorders).
//
// Guarantees:
//
//   - Never panics at runtime; failures are sentinel errors wrapped with the
//     constructor name (ErrEmptyName, ErrDuplicateTerritory,
//     ErrUnknownTerritory, ErrConstructFailed) or wrapped core errors.
//   - Deterministic: the same constructor list yields the same handles.
//
// Example:
//
//	g, idx, err := builder.BuildGraph(nil, builder.TurkeyRegion())
//	if err != nil { /* handle */ }
//	nbs, _ := g.Neighbors(idx[builder.BlackSea])
package builder
