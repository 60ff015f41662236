// Package heesch drives the corona loop: repeatedly compute the boundary
// of the occupied region, try to complete a corona, and grow the
// occupied region on success, up to a configured cap.
//
// Hc(shape) is the number of coronas completed before the first failure,
// or the cap if every attempt up to the cap succeeded. The loop is
// strictly single-threaded and non-suspending: no goroutines, no
// cancellation points inside it — concurrency, when wanted, belongs one
// level up, in package search.
package heesch
