package vm

import "fmt"

// RuntimeError is a fatal VM fault: division by zero, an empty stack at
// a point requiring a value, or a malformed opcode byte.
type RuntimeError struct {
	Offset  int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("💥 Hawk runtime error at offset %d: %s", e.Offset, e.Message)
}
