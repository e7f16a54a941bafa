package math

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/animath/engine/containers"
)

/**
 * @brief A Matrix4d with a bounded history, in the style of the fixed
 * function glPushMatrix/glPopMatrix pair. The embedded matrix is the current
 * one; every Matrix4d method applies to it directly.
 */
type MatrixStack struct {
	Matrix4d
	saved *containers.Stack[Matrix4d]
}

/**
 * @brief Creates a stack able to hold size matrices in total, the current
 * one included. The current matrix starts as the identity.
 *
 * @return ErrInvalidStackSize when size is less than 1.
 */
func NewMatrixStack(size int) (*MatrixStack, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStackSize, size)
	}
	s := &MatrixStack{saved: containers.NewStack[Matrix4d](size - 1)}
	s.Identity()
	return s, nil
}

// Clear drops every saved matrix and resets the current one to identity.
func (s *MatrixStack) Clear() *MatrixStack {
	s.saved.Clear()
	s.Identity()
	return s
}

// PushMatrix saves a copy of the current matrix.
func (s *MatrixStack) PushMatrix() error {
	if err := s.saved.Push(s.Matrix4d); err != nil {
		if errors.Is(err, containers.ErrStackFull) {
			return fmt.Errorf("%w: capacity %d", ErrStackOverflow, s.saved.Cap()+1)
		}
		return err
	}
	return nil
}

// PopMatrix restores the most recently pushed matrix.
func (s *MatrixStack) PopMatrix() error {
	m, err := s.saved.Pop()
	if err != nil {
		if errors.Is(err, containers.ErrStackEmpty) {
			return ErrStackUnderflow
		}
		return err
	}
	s.Matrix4d = m
	return nil
}

// Depth returns the number of saved matrices.
func (s *MatrixStack) Depth() int {
	return s.saved.Len()
}
