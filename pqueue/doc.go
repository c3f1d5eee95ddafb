// Package pqueue provides a generic min-priority queue backed by a binary heap.
//
// What
//
//   - Enqueue(v, priority) inserts unconditionally; duplicates are kept.
//   - Dequeue() removes the entry with the smallest priority and reports
//     ok == false on an empty queue instead of panicking.
//   - IsEmpty, Len and Peek inspect the queue without changing it.
//
// Entries with equal priority leave in insertion order. Callers must not
// rely on that: it only makes runs reproducible.
//
// Complexity
//
//   - Enqueue, Dequeue: O(log n)
//   - Peek, IsEmpty, Len: O(1)
//
// A Queue is not safe for concurrent use; each search allocates its own.
package pqueue
