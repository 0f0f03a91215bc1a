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

import "strconv"

// Opcode identifies the operation performed by an Instruction.
type Opcode uint8

// Virtual Machine Opcodes.
const (
	OpHalt Opcode = iota
	OpAdd
	OpRight
	OpLeft
	OpJez
	OpJnz
	OpZero
	OpSearchLeft
	OpSearchRight
	OpAddMoveLeft
	OpAddMoveRight
	OpZeroLeft
	OpZeroRight
	OpMandel
	OpWrite
	OpRead
	opCount
)

var opcodes = [...]string{
	"halt",
	"add",
	"right",
	"left",
	"jez",
	"jnz",
	"zero",
	"searchl",
	"searchr",
	"amovel",
	"amover",
	"zerol",
	"zeror",
	"mandel",
	"write",
	"read",
}

// arity is the number of operands used by each opcode.
var arity = [opCount]int{
	OpAdd:          1,
	OpRight:        1,
	OpLeft:         1,
	OpJez:          1,
	OpJnz:          1,
	OpSearchLeft:   1,
	OpSearchRight:  1,
	OpAddMoveLeft:  1,
	OpAddMoveRight: 1,
	OpZeroLeft:     1,
	OpZeroRight:    1,
	OpMandel:       2,
}

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	if op < opCount {
		return opcodes[op]
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// Arity returns the number of operands op takes: 0, 1 or 2.
func (op Opcode) Arity() int {
	if op < opCount {
		return arity[op]
	}
	return 0
}

// Valid returns true if op is a known opcode.
func (op Opcode) Valid() bool {
	return op < opCount
}

// Instruction is a single VM instruction. Arg and Arg2 are the operands, their
// meaning depends on Op. Unused operands must be zero so that instructions can
// be compared with ==.
type Instruction struct {
	Op   Opcode
	Arg  uint16
	Arg2 uint16
}

// String returns the instruction in assembler syntax.
func (i Instruction) String() string {
	switch i.Op.Arity() {
	case 1:
		return i.Op.String() + " " + strconv.Itoa(int(i.Arg))
	case 2:
		return i.Op.String() + " " + strconv.Itoa(int(i.Arg)) + " " + strconv.Itoa(int(i.Arg2))
	}
	return i.Op.String()
}

// Add returns an add instruction. The delta is added modulo 256.
func Add(delta uint8) Instruction { return Instruction{Op: OpAdd, Arg: uint16(delta)} }

// Right returns an instruction moving the pointer n cells to the right.
func Right(n uint16) Instruction { return Instruction{Op: OpRight, Arg: n} }

// Left returns an instruction moving the pointer n cells to the left.
func Left(n uint16) Instruction { return Instruction{Op: OpLeft, Arg: n} }

// Jez returns a forward conditional jump.
func Jez(d uint16) Instruction { return Instruction{Op: OpJez, Arg: d} }

// Jnz returns a backward conditional jump.
func Jnz(d uint16) Instruction { return Instruction{Op: OpJnz, Arg: d} }

// SearchLeft returns a search instruction with the given stride.
func SearchLeft(stride uint16) Instruction { return Instruction{Op: OpSearchLeft, Arg: stride} }

// SearchRight returns a search instruction with the given stride.
func SearchRight(stride uint16) Instruction { return Instruction{Op: OpSearchRight, Arg: stride} }

// AddMoveLeft returns an instruction that adds the current cell to the cell d
// positions to the left and clears the current cell.
func AddMoveLeft(d uint16) Instruction { return Instruction{Op: OpAddMoveLeft, Arg: d} }

// AddMoveRight is the mirror of AddMoveLeft.
func AddMoveRight(d uint16) Instruction { return Instruction{Op: OpAddMoveRight, Arg: d} }

// ZeroLeft returns an instruction that clears n cells, moving left.
func ZeroLeft(n uint16) Instruction { return Instruction{Op: OpZeroLeft, Arg: n} }

// ZeroRight returns an instruction that clears n cells, moving right.
func ZeroRight(n uint16) Instruction { return Instruction{Op: OpZeroRight, Arg: n} }

// Mandel returns the fused diffusion loop instruction.
func Mandel(x, n uint16) Instruction { return Instruction{Op: OpMandel, Arg: x, Arg2: n} }

// Operand-less instructions.
var (
	Zero  = Instruction{Op: OpZero}
	Write = Instruction{Op: OpWrite}
	Read  = Instruction{Op: OpRead}
	Halt  = Instruction{Op: OpHalt}
)

var opcodeIndex = make(map[string]Opcode)

func init() {
	for i, v := range opcodes {
		opcodeIndex[v] = Opcode(i)
	}
}

// Lookup returns the opcode for the given mnemonic.
func Lookup(mnemonic string) (op Opcode, ok bool) {
	op, ok = opcodeIndex[mnemonic]
	return
}
