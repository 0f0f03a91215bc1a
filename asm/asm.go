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
	"bytes"
	"io"
	"text/scanner"

	"github.com/db47h/bfvm/internal/bfi"
	"github.com/db47h/bfvm/vm"
)

// mnemonics and aliases, indexed by opcode. The first entry is the one used
// by the disassembler.
var opcodes = [...][]string{
	vm.OpHalt:         {"halt"},
	vm.OpAdd:          {"add", "+"},
	vm.OpRight:        {"right", ">"},
	vm.OpLeft:         {"left", "<"},
	vm.OpJez:          {"jez", "["},
	vm.OpJnz:          {"jnz", "]"},
	vm.OpZero:         {"zero"},
	vm.OpSearchLeft:   {"searchl"},
	vm.OpSearchRight:  {"searchr"},
	vm.OpAddMoveLeft:  {"amovel"},
	vm.OpAddMoveRight: {"amover"},
	vm.OpZeroLeft:     {"zerol"},
	vm.OpZeroRight:    {"zeror"},
	vm.OpMandel:       {"mandel"},
	vm.OpWrite:        {"write", "."},
	vm.OpRead:         {"read", ","},
}

var opcodeIndex = make(map[string]vm.Opcode)

func init() {
	for op, names := range opcodes {
		for _, n := range names {
			opcodeIndex[n] = vm.Opcode(op)
		}
	}
}

// Error is an assembly error at a given position.
type Error struct {
	Pos scanner.Position
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm is the error type returned by Assemble. It contains up to 10
// entries.
type ErrAsm []Error

func (e ErrAsm) Error() string {
	var b bytes.Buffer
	for i := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e[i].Error())
	}
	return b.String()
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
//
// Jump distances are used as written, no check is made that they match.
func Assemble(name string, r io.Reader) (vm.Program, error) {
	p := newParser()
	err := p.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return p.p, nil
}

// Disassemble writes a disassembly of the instruction in the given program at
// position pc to the specified io.Writer and returns the position of the next
// instruction and any write error.
func Disassemble(p vm.Program, pc int, w io.Writer) (next int, err error) {
	ew := bfi.NewErrWriter(w)
	in := p[pc]
	if int(in.Op) < len(opcodes) {
		ew.WriteString(opcodes[in.Op][0])
	} else {
		ew.WriteString(in.Op.String())
	}
	switch in.Op.Arity() {
	case 2:
		ew.WriteByte(' ')
		ew.WriteInt(int(in.Arg), 0)
		ew.WriteByte(' ')
		ew.WriteInt(int(in.Arg2), 0)
	case 1:
		ew.WriteByte(' ')
		ew.WriteInt(int(in.Arg), 0)
	}
	return pc + 1, ew.Err
}

// DisassembleAll writes a disassembly of all instructions in the given program
// to the specified io.Writer. The base argument specifies the real address of
// the first instruction (p[0]). Jumps are annotated with their target address.
// It will return any write error.
func DisassembleAll(p vm.Program, base int, w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	for pc := 0; pc < len(p); {
		ew.WriteInt(base+pc, 10)
		ew.WriteByte('\t')
		next, _ := Disassemble(p, pc, ew)
		switch p[pc].Op {
		case vm.OpJez:
			ew.WriteString("\t( ")
			ew.WriteInt(base+pc+int(p[pc].Arg)+1, 0)
			ew.WriteString(" )")
		case vm.OpJnz:
			ew.WriteString("\t( ")
			ew.WriteInt(base+pc-int(p[pc].Arg)+1, 0)
			ew.WriteString(" )")
		}
		ew.WriteByte('\n')
		if ew.Err != nil {
			return ew.Err
		}
		pc = next
	}
	return nil
}
