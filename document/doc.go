// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package document implements an arena-backed in-memory model for
// JSON-like values (null, boolean, integer, float, string, array,
// object) aimed at memory-constrained, allocation-averse workloads.
//
// The model provides:
//   - A tagged-union value cell (VariantData) with no per-node heap
//     allocation and no dynamic dispatch
//   - Intrusive singly-linked collections (CollectionData) shared by
//     arrays and objects
//   - A fixed-capacity Pool supplying slot storage and ref-counted,
//     content-deduplicated string storage
//   - Deep copy, structural equality, a closed-set visitor, and a
//     tree-wide index rebase after pool compaction
//
// All intra-document links are pool-relative indices (SlotID, StringID),
// never raw pointers, so compaction shifts the whole slot block by a
// single signed distance and MovePointers applies that distance to every
// stored link. String handles are stable and never rebased.
//
// Trade-offs:
//   - Keyed and positional lookup are O(n) linear scans
//   - One pool serves one document; there is no sharing between pools
//   - Single-threaded: callers must serialize access to a document
package document
