// Package harness runs randomized self-checks of the bipartite checker.
//
// Each trial builds a random bipartite graph with sides of V1 and V2 vertices
// and E cross edges, then adds F uniformly random extra edges (self-loops and
// parallel edges allowed) that may break bipartiteness. The checker result is
// certified with bipartite.Verify, so a trial only fails on a real defect.
//
// Trials run concurrently on an errgroup bounded by WithWorkers. Trial i is
// seeded with seed+i, which makes every Report reproducible regardless of the
// worker count or scheduling.
//
// Describe renders a checker result in the plain text form printed by the
// command-line demo, one 0/1 colour per vertex:
//
//	Graph is bipartite
//	0: 0
//	1: 1
//
// or
//
//	Graph has an odd-length cycle: 3 7 12 3
package harness
