// Package vm implements Hawk's stack virtual machine: an integer stack, a
// single save register, and a read cursor over a bytecode buffer.
package vm

import "github.com/AlexCouch/hawk-lang/bytecode"

// VM is a fresh stack and register for a single run.
type VM struct {
	stack []int32
	save  int32
}

// New returns a VM with an empty stack.
func New() *VM {
	return &VM{}
}

// Run executes code to completion and returns the last element of the
// final stack (the program's printed result).
func (m *VM) Run(code []byte) (int32, error) {
	ip := 0
	for ip < len(code) {
		op := bytecode.Op(code[ip])
		opOffset := ip
		ip++

		switch op {
		case bytecode.PUSH:
			if ip+4 > len(code) {
				return 0, &RuntimeError{Offset: opOffset, Message: "truncated PUSH operand"}
			}
			v := bytecode.DecodeInt32(code[ip : ip+4])
			ip += 4
			m.stack = append(m.stack, v)

		case bytecode.POP:
			if len(m.stack) == 0 {
				return 0, &RuntimeError{Offset: opOffset, Message: "POP on empty stack"}
			}
			m.stack = m.stack[:len(m.stack)-1]

		case bytecode.READ:
			if ip+4 > len(code) {
				return 0, &RuntimeError{Offset: opOffset, Message: "truncated READ operand"}
			}
			k := bytecode.DecodeInt32(code[ip : ip+4])
			ip += 4
			topIndex := len(m.stack) - 1
			i := topIndex - int(k)
			if i < 0 || i >= len(m.stack) {
				return 0, &RuntimeError{Offset: opOffset, Message: "READ out of bounds"}
			}
			v := m.stack[i]
			if v != 0 {
				m.stack = append(m.stack, v)
			}

		case bytecode.SAVE:
			if len(m.stack) == 0 {
				return 0, &RuntimeError{Offset: opOffset, Message: "SAVE on empty stack"}
			}
			m.save = m.stack[len(m.stack)-1]
			m.stack = m.stack[:len(m.stack)-1]

		case bytecode.LOAD:
			m.stack = append(m.stack, m.save)

		case bytecode.ADD, bytecode.SUB, bytecode.MUL, bytecode.DIV:
			right, left, err := m.pop2(opOffset)
			if err != nil {
				return 0, err
			}
			switch op {
			case bytecode.ADD:
				m.stack = append(m.stack, right+left)
			case bytecode.SUB:
				m.stack = append(m.stack, left-right)
			case bytecode.MUL:
				m.stack = append(m.stack, left*right)
			case bytecode.DIV:
				if right == 0 {
					return 0, &RuntimeError{Offset: opOffset, Message: "division by zero"}
				}
				m.stack = append(m.stack, left/right)
			}

		default:
			return 0, &RuntimeError{Offset: opOffset, Message: "malformed opcode byte"}
		}
	}

	if len(m.stack) == 0 {
		return 0, &RuntimeError{Offset: ip, Message: "empty stack at end of program"}
	}
	return m.stack[len(m.stack)-1], nil
}

func (m *VM) pop2(offset int) (right, left int32, err error) {
	if len(m.stack) < 2 {
		return 0, 0, &RuntimeError{Offset: offset, Message: "binary operator on a stack with fewer than two elements"}
	}
	right = m.stack[len(m.stack)-1]
	left = m.stack[len(m.stack)-2]
	m.stack = m.stack[:len(m.stack)-2]
	return right, left, nil
}
