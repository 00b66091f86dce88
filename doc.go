// Package lvcluster clusters points in 3-D integer space by pairwise
// Euclidean distance and finds the edge that finally connects them all.
//
// What is in the box?
//
//   - point       – the Point type, its Euclidean metric and an "x,y,z" reader
//   - edges       – complete-graph edge enumeration and a cheapest-first queue
//   - disjointset – union-find with path compression and union by size
//   - cluster     – the two queries, BoundedMerge(k) and FullConnectivity()
//
// Quick ASCII example (four points on a line, x = 0, 4, 10, 100):
//
//	0 ─4─ 4 ──6── 10 ───────90─────── 100
//
// BoundedMerge(2) unions the two cheapest edges and leaves components of
// sizes 3 and 1. FullConnectivity crosses the 90-unit gap last, so its
// answer is 10·100.
//
// The lvcluster binary (cmd/lvcluster) wraps the library:
//
//	lvcluster solve input.txt -k 1000
package lvcluster
