// Package pqueue provides a filtered min-priority queue: a priority queue
// whose items carry a derived key, and which returns at most one item per
// key — the first one extracted, which under Dijkstra's invariant is the one
// with the minimum priority.
//
// Overview:
//
//   - In Dijkstra-style searches over oriented nodes, the classic idiom is
//     a visited set plus decrease-key. The filtered queue replaces both:
//     push duplicates freely, and the queue silently drops any entry whose
//     key has already been popped.
//   - Suppression happens on both ends: a push for an already-emitted key
//     is dropped immediately, and stale heap entries are skipped on pop.
//     Either point alone would be correct; doing both keeps the heap small.
//
// Complexity:
//
//   - Push: O(log n) (O(1) when dropped).
//   - Pop:  amortized O(log n); each inserted entry is popped at most once.
//   - Space: O(n) for pending entries plus O(k) for emitted keys.
//
// API reference:
//
//	q := pqueue.New[T, K](key, less)   // key: T → K, less: min-ordering on T
//	q.Push(item)                        // dropped if key(item) already popped
//	item, ok := q.Pop()                 // ok=false when exhausted
//	q.Len()                             // pending entries (may include stale)
//	q.Clear()                           // forget entries AND emitted keys
//
// The queue is not safe for concurrent use.
package pqueue
