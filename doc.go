// Package territory is an in-memory adjacency graph for strategy-board-game
// maps: territories (Sea, Land, supply centers) and the borders between them.
//
// What's inside:
//
//	core/    — Graph, Handle, Classification; node & edge lifecycle with
//	           generational handles so removed territories never leak back
//	builder/ — declarative map construction (Territory, Border, Clique,
//	           Compose) and the sample Turkey maps
//
// Quick ASCII example (the Turkey map):
//
//	 Constantinople
//	    /      \
//	Ankara ─── Smyrna
//
// represents three Turkish home centers, each adjacent to the other two.
//
// Out of scope: pathfinding, move adjudication, persistence and concurrent
// mutation. A Graph is a single-threaded building block for those layers.
//
//	go get github.com/katalvlaran/territory
package territory
