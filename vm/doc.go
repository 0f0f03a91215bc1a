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

// Package vm implements a bytecode virtual machine for the eight instruction
// tape language usually known as brainfuck.
//
// The machine has a circular tape of byte cells (30000 by default), a tape
// pointer and a program counter. Pointer moves wrap around both ends of the
// tape and cell arithmetic wraps modulo 256.
//
// Besides the primitive instructions (add, right, left, jez, jnz, read, write
// and halt), the instruction set contains fused instructions produced by the
// peephole optimizer of package compiler. Each of them replaces a common loop
// idiom:
//
//	zero            [-]             clear the current cell
//	searchr n       [>>>]           move by n until a zero cell is found
//	amover n        [->>>+<<<]      add the current cell n cells away, clear it
//	zeror n         [-]>[-]>        clear n cells, moving right
//	mandel x n      [>[->+<]<<]     diffusion loop (see below)
//
// and their left counterparts. The mandel instruction repeats, while the
// current cell is not zero: add the cell at offset x to the cell at offset
// x+n, clear the cell at offset x, move the pointer n cells to the left.
//
// Jumps are relative: a taken jez adds its distance to the PC, a taken jnz
// subtracts it, in addition to the regular increment. For a loop body of
// length l, both jumps of the pair have a distance of l+1.
//
// Programs with a zero stride search or mismatched jump distances are invalid
// and are not checked for. The compiler does not produce them.
package vm
