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

// Package bf is the front end of the brainfuck compiler: it scans and parses
// source code into an operation tree for package compiler.
//
// Only the eight commands
//
//	> < + - . , [ ]
//
// are meaningful, anything else is a comment. Brackets must be balanced.
package bf

import (
	"io"

	"github.com/db47h/bfvm/compiler"
	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
)

// Compile parses a program from r and compiles it with the given compiler
// options.
func Compile(name string, r io.Reader, opts ...compiler.Option) (vm.Program, error) {
	nodes, err := Parse(name, r)
	if err != nil {
		return nil, err
	}
	p, err := compiler.New(opts...).Generate(nodes)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return p, nil
}
