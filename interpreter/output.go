package interpreter

import (
	"fmt"
	"io"
)

// Output receives the value of every executed print statement, in order.
type Output interface {
	Print(v int64) error
}

// Lines writes each value on its own line.
type Lines struct {
	W io.Writer
}

func (l Lines) Print(v int64) error {
	_, err := fmt.Fprintln(l.W, v)
	return err
}

// Record keeps printed values in memory.
type Record struct {
	Values []int64
}

func (r *Record) Print(v int64) error {
	r.Values = append(r.Values, v)
	return nil
}
