// SPDX-License-Identifier: MIT

package markov

// reachWalker holds the state of a reverse breadth-first search that starts
// from every absorbing state at once and walks transitions backwards.
// A state is marked when it has a path (of positive weights) into some
// absorbing state.
type reachWalker struct {
	sys    *TransitionSystem
	queue  []int
	marked []bool
}

// stuckStates returns, in ascending order, the transient states that cannot
// reach any absorbing state. Such states form closed classes that never
// absorb; their presence makes I−Q singular.
//
// Complexity: O(n²) (each dequeued state scans one column).
func (s *TransitionSystem) stuckStates() []int {
	n := s.Size()
	w := &reachWalker{
		sys:    s,
		queue:  make([]int, 0, n),
		marked: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		if s.IsAbsorbing(i) {
			w.enqueue(i)
		}
	}
	w.loop()

	var stuck []int
	for i, ok := range w.marked {
		if !ok {
			stuck = append(stuck, i)
		}
	}

	return stuck
}

// enqueue marks state i and schedules its predecessors for a scan.
func (w *reachWalker) enqueue(i int) {
	w.marked[i] = true
	w.queue = append(w.queue, i)
}

// loop drains the queue; every unmarked predecessor of a marked state is marked.
func (w *reachWalker) loop() {
	for len(w.queue) > 0 {
		j := w.queue[0]
		w.queue = w.queue[1:]
		for i := range w.sys.weights {
			if !w.marked[i] && w.sys.weights[i][j].Sign() > 0 {
				w.enqueue(i)
			}
		}
	}
}
