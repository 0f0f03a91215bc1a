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

package bf

import (
	"bytes"
	"io"
	"text/scanner"

	"github.com/db47h/bfvm/compiler"
	"github.com/pkg/errors"
)

const maxErrors = 10

// Error is a syntax error at a given position.
type Error struct {
	Pos scanner.Position
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrSyntax is the error returned by Parse for unbalanced loops. It contains
// up to 10 entries.
type ErrSyntax []Error

func (e ErrSyntax) Error() string {
	var b bytes.Buffer
	for i := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e[i].Error())
	}
	return b.String()
}

func (e *ErrSyntax) add(pos scanner.Position, msg string) {
	if len(*e) < maxErrors {
		*e = append(*e, Error{pos, msg})
	}
}

var leaves = [...]compiler.Node{
	Right:  compiler.Right,
	Left:   compiler.Left,
	Inc:    compiler.Inc,
	Dec:    compiler.Dec,
	Output: compiler.Output,
	Input:  compiler.Input,
}

// Parse reads a program from r and returns its operation tree, terminated
// by a halt node.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// Unbalanced brackets are reported as an ErrSyntax pointing at the offending
// brackets. Read errors are returned as is.
func Parse(name string, r io.Reader) ([]compiler.Node, error) {
	type frame struct {
		pos  scanner.Position
		body []compiler.Node
	}
	var errs ErrSyntax
	s := NewScanner(name, r)
	stack := []frame{{}}

	for tok := s.Scan(); tok.Kind != EOF; tok = s.Scan() {
		switch tok.Kind {
		case LoopStart:
			stack = append(stack, frame{pos: tok.Pos})
		case LoopEnd:
			if len(stack) == 1 {
				errs.add(tok.Pos, "unexpected ]")
				continue
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			top := &stack[len(stack)-1]
			top.body = append(top.body, compiler.Loop(f.body...))
		default:
			top := &stack[len(stack)-1]
			top.body = append(top.body, leaves[tok.Kind])
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, name)
	}
	for _, f := range stack[1:] {
		errs.add(f.pos, "unterminated loop")
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return append(stack[0].body, compiler.Halt), nil
}
