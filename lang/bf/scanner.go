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
	"io"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/pkg/errors"
)

// Kind is the kind of a Token.
type Kind int

// Token kinds.
const (
	EOF       Kind = iota
	Right          // >
	Left           // <
	Inc            // +
	Dec            // -
	Output         // .
	Input          // ,
	LoopStart      // [
	LoopEnd        // ]
)

var kindNames = [...]string{"EOF", ">", "<", "+", "-", ".", ",", "[", "]"}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is a command read from the source, along with its position.
type Token struct {
	Kind Kind
	Pos  scanner.Position
}

// Scanner reads commands from a source. Any character that is not one of the
// eight commands is a comment.
type Scanner struct {
	s   scanner.Scanner
	err error
}

// NewScanner returns a new Scanner reading from r. The name is used in token
// positions; if the io.Reader is a file, name should be the file name.
func NewScanner(name string, r io.Reader) *Scanner {
	s := new(Scanner)
	s.s.Init(r)
	s.s.Mode = 0
	s.s.Filename = name
	s.s.Error = func(_ *scanner.Scanner, msg string) {
		// Binary garbage is as good a comment as any.
		if s.err == nil && !strings.HasPrefix(msg, "invalid") {
			s.err = errors.New(msg)
		}
	}
	return s
}

// Scan returns the next command. At the end of the input, or after a read
// error, it returns a token of kind EOF.
func (s *Scanner) Scan() Token {
	for {
		r := s.s.Scan()
		var k Kind
		switch r {
		case scanner.EOF:
			return Token{EOF, s.s.Pos()}
		case '>':
			k = Right
		case '<':
			k = Left
		case '+':
			k = Inc
		case '-':
			k = Dec
		case '.':
			k = Output
		case ',':
			k = Input
		case '[':
			k = LoopStart
		case ']':
			k = LoopEnd
		default:
			continue
		}
		return Token{k, s.s.Position}
	}
}

// Err returns the first read error encountered by the scanner, if any.
func (s *Scanner) Err() error {
	return s.err
}
