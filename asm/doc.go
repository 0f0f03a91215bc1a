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

// Package asm provides utility functions to assemble and disassemble bfvm
// programs.
//
// Supported assembler mnemonics:
//
//	Instructions with operands expect them as integers following the mnemonic.
//	Integers can be written in decimal, octal (0 prefix) or hexadecimal (0x).
//
//	mnemonic	alias	operands	description
//	--------	-----	--------	---------------------------------------------------------
//	halt				stop the program
//	add	+	d	add d to the current cell, modulo 256. -128 <= d <= 255
//	right	>	n	move the pointer n cells to the right
//	left	<	n	move the pointer n cells to the left
//	jez	[	d	if the current cell is 0, skip the next d instructions
//	jnz	]	d	if the current cell is not 0, jump back d-1 instructions
//	zero			clear the current cell
//	searchl		n	while the current cell is not 0, move n cells to the left
//	searchr		n	while the current cell is not 0, move n cells to the right
//	amovel		n	add the current cell to the cell n cells to the left, clear it
//	amover		n	add the current cell to the cell n cells to the right, clear it
//	zerol		n	clear n cells, moving left
//	zeror		n	clear n cells, moving right
//	mandel		x n	diffusion loop, see package vm
//	write	.		write the current cell to the output
//	read	,		read one byte of input into the current cell
//
// Comments:
//
// Comments are placed between parentheses, with a space after the opening
// parenthesis and before the closing one:
//
//	( this is a comment )
//
// Assembly of the loop [->+<]:
//
//	jez 5
//		add -1
//		right 1
//		add 1
//		left 1
//	jnz 5
package asm
