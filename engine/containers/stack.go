package containers

// Stack is a fixed-capacity LIFO.
type Stack[T any] struct {
	data []T
}

func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{
		data: make([]T, 0, capacity),
	}
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) error {
	if s.IsFull() {
		return ErrStackFull
	}
	s.data = append(s.data, value)
	return nil
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrStackEmpty
	}
	top := len(s.data) - 1
	value := s.data[top]
	s.data[top] = zero
	s.data = s.data[:top]
	return value, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrStackEmpty
	}
	return s.data[len(s.data)-1], nil
}

// Top returns a pointer to the top element so it can be modified in place.
// The pointer is valid until the next Push or Pop.
func (s *Stack[T]) Top() (*T, error) {
	if s.IsEmpty() {
		return nil, ErrStackEmpty
	}
	return &s.data[len(s.data)-1], nil
}

// Clear removes every element.
func (s *Stack[T]) Clear() {
	clear(s.data)
	s.data = s.data[:0]
}

func (s *Stack[T]) Len() int {
	return len(s.data)
}

func (s *Stack[T]) Cap() int {
	return cap(s.data)
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.data) == 0
}

func (s *Stack[T]) IsFull() bool {
	return len(s.data) == cap(s.data)
}
