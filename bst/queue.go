package bst

// stack and queue hold the pending work of the iterative traversals, so no
// walk over the tree recurses on its height.

type stack[E any] struct {
	elements []E
}

func (s *stack[E]) push(x E) {
	s.elements = append(s.elements, x)
}

// pop returns the most recently pushed element. The boolean is false if the
// stack was empty.
func (s *stack[E]) pop() (E, bool) {
	if len(s.elements) == 0 {
		var zero E
		return zero, false
	}
	x := s.elements[len(s.elements)-1]
	s.elements = s.elements[:len(s.elements)-1]
	return x, true
}

type queue[E any] struct {
	back  *stack[E]
	front *stack[E]
}

func newQueue[E any]() queue[E] {
	return queue[E]{
		back:  &stack[E]{},
		front: &stack[E]{},
	}
}

func (q queue[E]) push(x E) {
	q.back.push(x)
}

func (q queue[E]) emptyBack() {
	for {
		x, ok := q.back.pop()
		if !ok {
			break
		}
		q.front.push(x)
	}
}

func (q queue[E]) pop() (E, bool) {
	x, ok := q.front.pop()
	if ok {
		return x, true
	}
	q.emptyBack()
	return q.front.pop()
}
