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
	"strconv"

	"github.com/pkg/errors"
)

type flusher interface {
	Flush() error
}

// IOError is returned by Run when the input or output failed. Op is either
// OpRead or OpWrite and PC the address of the failing instruction.
type IOError struct {
	Op  Opcode
	PC  int
	Err error
}

func (e *IOError) Error() string {
	var what string
	switch e.Op {
	case OpRead:
		what = "input"
	case OpWrite:
		what = "output"
	default:
		what = e.Op.String()
	}
	return what + " failed at pc " + strconv.Itoa(e.PC) + ": " + e.Err.Error()
}

// Cause returns the underlying error.
func (e *IOError) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error { return e.Err }

type multiReader struct {
	readers []io.Reader
}

func (mr *multiReader) Read(p []byte) (n int, err error) {
	for len(mr.readers) > 0 {
		n, err = mr.readers[0].Read(p)
		if n > 0 || err != io.EOF {
			if err == io.EOF {
				// Don't return EOF yet. There may be more bytes
				// in the remaining readers.
				err = nil
			}
			return
		}
		if c, ok := mr.readers[0].(io.Closer); ok {
			c.Close()
		}
		mr.readers = mr.readers[1:]
	}
	return 0, io.EOF
}

func (mr *multiReader) pushReader(r io.Reader) {
	mr.readers = append([]io.Reader{r}, mr.readers...)
}

// PushInput sets r as the current input Reader for the VM. When this reader
// reaches EOF, the previously pushed reader will be used. Readers implementing
// io.Closer are closed once exhausted.
func (i *Instance) PushInput(r io.Reader) {
	// dont use a multi reader unless necessary
	switch in := i.input.(type) {
	case nil:
		i.input = r
	case *multiReader:
		in.pushReader(r)
	default:
		i.input = &multiReader{[]io.Reader{r, i.input}}
	}
}

// read flushes the output then reads one byte into the current cell. On EOF
// the cell is left untouched.
func (i *Instance) read() error {
	if i.input == nil {
		return nil
	}
	if err := i.flush(); err != nil {
		return err
	}
	var b [1]byte
	_, err := io.ReadFull(i.input, b[:])
	switch err {
	case nil:
		i.Tape[i.Ptr] = b[0]
	case io.EOF:
	default:
		return &IOError{OpRead, i.PC, errors.Wrap(err, "read failed")}
	}
	return nil
}

// write writes the current cell to the output.
func (i *Instance) write() error {
	if i.output == nil {
		return nil
	}
	if _, err := i.output.Write(i.Tape[i.Ptr : i.Ptr+1]); err != nil {
		return &IOError{OpWrite, i.PC, errors.Wrap(err, "write failed")}
	}
	return nil
}

func (i *Instance) flush() error {
	if f, ok := i.output.(flusher); ok {
		if err := f.Flush(); err != nil {
			return &IOError{OpWrite, i.PC, errors.Wrap(err, "flush failed")}
		}
	}
	return nil
}
