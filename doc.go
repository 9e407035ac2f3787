// Package varelim is the data core for discrete graphical-model inference:
// interaction graphs, strided factor tables, elimination-order heuristics,
// and bounded best-K solution collection.
//
// 🚀 What is varelim?
//
//	A small, deterministic, pure-Go library that brings together:
//		• graph/    — undirected interaction graphs over variable indices
//		• table/    — dense factor tables with mixed-radix (strided) addressing
//		• order/    — min-degree and min-fill elimination-order heuristics
//		• solution/ — capped, sorted best-K assignment tracking
//
// ✨ Why choose varelim?
//
//   - Deterministic by contract — stable adjacency order, stable tie-breaks,
//     reproducible results across runs and implementations
//   - Explicit errors — every out-of-range index and malformed argument
//     surfaces as a package sentinel, matched with errors.Is; nothing is
//     silently clamped or swallowed
//   - Flat-buffer tables — one owned slice per factor, cache-friendly
//     combine/marginalize without pointer chasing
//   - Pure Go — no cgo, no hidden deps
//
// The intended flow: a model loader builds a graph.Graph and a set of
// table.Table factors; an elimination driver picks a processing order with
// order.MinDegree or order.MinFill, folds tables together along it with
// table.Combine and table.Marginalize, and records candidate assignments
// into a solution.MinSolutionSet. Everything here is the passive algebra
// underneath that driver; the driver itself lives with the caller.
//
// Quick ASCII example of a 3-variable chain model:
//
//	x0───x1───x2
//
// two pairwise factors, elimination order {0, 2, 1}.
//
// Dive into the per-package docs and examples/ for complete walkthroughs.
//
//	go get github.com/avolokh/varelim
package varelim
