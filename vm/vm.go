// This file is part of bfvm - https://github.com/db47h/bfvm
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"io"

	"github.com/pkg/errors"
)

// DefaultTapeSize is the number of cells of the tape unless the TapeSize
// option is used.
const DefaultTapeSize = 30000

// Program is a sequence of instructions ready to run. A Program is never
// modified by the VM and can be shared between instances.
type Program []Instruction

// Instance represents a VM instance.
type Instance struct {
	PC       int     // Program Counter
	Ptr      int     // Tape pointer
	Tape     []byte  // Tape cells
	Program  Program // Program being run
	insCount int64
	input    io.Reader
	output   io.Writer
}

// Option interface
type Option func(*Instance) error

// TapeSize sets the number of cells of the tape. The default is 30000 cells.
func TapeSize(size int) Option {
	return func(i *Instance) error {
		if size <= 0 {
			return errors.Errorf("invalid tape size %d", size)
		}
		i.Tape = make([]byte, size)
		return nil
	}
}

// Input pushes the given Reader on top of the input stack. When this reader
// reaches EOF, the previously pushed reader will be used.
func Input(r io.Reader) Option {
	return func(i *Instance) error { i.PushInput(r); return nil }
}

// Output configures the output Writer. If w implements
//
//	Flush() error
//
// it will be flushed when the program terminates.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		i.output = w
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new VM instance that will run the given program.
//
// Options will be set by calling SetOptions. An instance without input reads
// EOF, and an instance without output discards anything written.
func New(p Program, opts ...Option) (*Instance, error) {
	i := &Instance{
		Program: p,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.Tape == nil {
		i.Tape = make([]byte, DefaultTapeSize)
	}
	return i, nil
}

// Cell returns the value of the cell under the pointer.
func (i *Instance) Cell() byte {
	return i.Tape[i.Ptr]
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
