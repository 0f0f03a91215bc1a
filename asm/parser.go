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

package asm

import (
	"io"
	"math"
	"strconv"
	"text/scanner"
	"unicode"

	"github.com/db47h/bfvm/vm"
)

const maxErrors = 10

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type parser struct {
	p    vm.Program
	s    scanner.Scanner
	errs ErrAsm
}

func newParser() *parser {
	return new(parser)
}

func (p *parser) error(pos scanner.Position, msg string) {
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, Error{pos, msg})
	}
}

// operand parses an operand of the given opcode. Add accepts negative values
// down to -128, which wrap to their unsigned equivalent.
func operand(op vm.Opcode, s string) (uint16, bool) {
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, false
	}
	if op == vm.OpAdd {
		if v < math.MinInt8 || v > math.MaxUint8 {
			return 0, false
		}
		return uint16(uint8(v)), true
	}
	if v < 0 || v > math.MaxUint16 {
		return 0, false
	}
	return uint16(v), true
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) error {
	var (
		in   vm.Instruction
		need int // operands still expected for in
	)

	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(s.Position, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF; tok = p.s.Scan() {
		s := p.s.TokenText()
		if tok != scanner.Ident {
			p.error(p.s.Position, "Unexpected character "+strconv.QuoteRune(tok))
			continue
		}
		if s == "(" {
			// skip comments
			for ; tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			continue
		}
		if need > 0 {
			v, ok := operand(in.Op, s)
			if !ok {
				p.error(p.s.Position, "Invalid operand for "+in.Op.String()+": "+s)
				need = 0
				continue
			}
			if in.Op.Arity()-need == 0 {
				in.Arg = v
			} else {
				in.Arg2 = v
			}
			if need--; need == 0 {
				p.p = append(p.p, in)
			}
			continue
		}
		op, ok := opcodeIndex[s]
		if !ok {
			p.error(p.s.Position, "Unknown mnemonic "+s)
			continue
		}
		in = vm.Instruction{Op: op}
		if need = op.Arity(); need == 0 {
			p.p = append(p.p, in)
		}
	}
	if need > 0 {
		p.error(p.s.Pos(), "Missing operand for "+in.Op.String())
	}
	if len(p.errs) > 0 {
		return p.errs
	}
	return nil
}
