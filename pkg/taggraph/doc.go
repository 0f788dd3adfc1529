// Package taggraph renders a compatibility tag sequence as a priority
// chain diagram.
//
// The sequence is turned into Graphviz DOT (see [ToDOT]) where each tag is
// a node and edges point from a tag to the next candidate tried after it.
// [RenderSVG] rasterizes the DOT through Graphviz.
package taggraph
