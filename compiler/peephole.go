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

package compiler

import (
	"math"

	"github.com/db47h/bfvm/vm"
)

// A rule rewrites a window of width instructions into a single instruction.
//
// Windows containing jumps only match complete loops: a jez at the start, the
// matching jnz at the end and no other jump in between. Jump distances are
// not looked at, they are recomputed by relink once all passes are done.
type rule struct {
	width int
	match func(w []vm.Instruction) (vm.Instruction, bool)
}

// A pass applies its rules in a single left to right scan. After a rewrite,
// the scan resumes at the rewritten instruction.
type pass struct {
	name  string
	rules []rule
}

var (
	clearPass  = pass{"clear", []rule{{3, clearLoop}}}
	dedupPass  = pass{"dedup", []rule{{2, zeroZero}}}
	searchPass = pass{"search", []rule{{3, searchLoop}}}
	movePass   = pass{"move", []rule{{6, moveLoop}, {6, moveLoopSwapped}}}
	areaPass   = pass{"zero-area", []rule{{2, zeroStep}, {2, zeroMerge}}}
	mandelPass = pass{"mandel", []rule{{5, mandelLoop}}}
)

// passes in order of application. zero-area runs twice so that runs of
// [-]> longer than two merge in a single round.
var passes = []pass{
	clearPass,
	dedupPass,
	searchPass,
	movePass,
	areaPass,
	areaPass,
	mandelPass,
}

func (ps *pass) apply(p vm.Program) (vm.Program, int) {
	var n int
	for k := 0; k < len(p); {
		if in, w, ok := ps.rewrite(p[k:]); ok {
			p[k] = in
			p = append(p[:k+1], p[k+w:]...)
			n++
			continue
		}
		k++
	}
	return p, n
}

func (ps *pass) rewrite(p vm.Program) (vm.Instruction, int, bool) {
	for _, r := range ps.rules {
		if r.width > len(p) {
			continue
		}
		if in, ok := r.match(p[:r.width]); ok {
			return in, r.width, true
		}
	}
	return vm.Instruction{}, 0, false
}

// Optimize runs the peephole optimizer with the default options. It returns a
// new program, p is not modified.
func Optimize(p vm.Program) vm.Program {
	return New().Optimize(p)
}

// Optimize runs the peephole optimizer on p and returns the optimized program.
// p is not modified.
//
// Passes are applied in a fixed order: clear loops, zero deduplication, search
// loops, move loops, zero areas (twice) and diffusion loops. When the
// Fixpoint option is set, the whole sequence is repeated until it no longer
// changes the program, which makes Optimize idempotent.
func (c *Compiler) Optimize(p vm.Program) vm.Program {
	q := make(vm.Program, len(p))
	copy(q, p)
	for round := 1; ; round++ {
		var total int
		for i := range passes {
			var n int
			q, n = passes[i].apply(q)
			total += n
			if n > 0 && c.log != nil {
				c.log.Debugf("round %d: %s: %d rewrites", round, passes[i].name, n)
			}
		}
		if total == 0 || !c.fixpoint {
			break
		}
	}
	relink(q)
	return q
}

// relink recomputes the distances of all jump pairs in p. Unbalanced jumps are
// left untouched.
func relink(p vm.Program) {
	var open []int
	for k := range p {
		switch p[k].Op {
		case vm.OpJez:
			open = append(open, k)
		case vm.OpJnz:
			if len(open) == 0 {
				continue
			}
			o := open[len(open)-1]
			open = open[:len(open)-1]
			d := uint16(k - o)
			p[o].Arg, p[k].Arg = d, d
		}
	}
}

// loop returns the body of w if w is a complete loop with a body of length
// l, and no jumps in the body.
func loop(w []vm.Instruction, l int) ([]vm.Instruction, bool) {
	if len(w) != l+2 || w[0].Op != vm.OpJez || w[l+1].Op != vm.OpJnz {
		return nil, false
	}
	body := w[1 : l+1]
	for _, in := range body {
		if in.Op == vm.OpJez || in.Op == vm.OpJnz {
			return nil, false
		}
	}
	return body, true
}

// opposite returns true if a and b are moves of the same magnitude in
// opposite directions.
func opposite(a, b vm.Instruction) bool {
	return a.Arg == b.Arg && a.Arg != 0 &&
		(a.Op == vm.OpRight && b.Op == vm.OpLeft || a.Op == vm.OpLeft && b.Op == vm.OpRight)
}

// [-], [+]
func clearLoop(w []vm.Instruction) (vm.Instruction, bool) {
	body, ok := loop(w, 1)
	if !ok {
		return vm.Instruction{}, false
	}
	switch body[0] {
	case vm.Add(1), vm.Add(255), vm.Zero:
		return vm.Zero, true
	}
	return vm.Instruction{}, false
}

func zeroZero(w []vm.Instruction) (vm.Instruction, bool) {
	if w[0] == vm.Zero && w[1] == vm.Zero {
		return vm.Zero, true
	}
	return vm.Instruction{}, false
}

// [>], [<<]
func searchLoop(w []vm.Instruction) (vm.Instruction, bool) {
	body, ok := loop(w, 1)
	if !ok || body[0].Arg == 0 {
		return vm.Instruction{}, false
	}
	switch body[0].Op {
	case vm.OpRight:
		return vm.SearchRight(body[0].Arg), true
	case vm.OpLeft:
		return vm.SearchLeft(body[0].Arg), true
	}
	return vm.Instruction{}, false
}

// [->>+<<], [-<<+>>]
func moveLoop(w []vm.Instruction) (vm.Instruction, bool) {
	body, ok := loop(w, 4)
	if !ok || body[0] != vm.Add(255) || body[2] != vm.Add(1) {
		return vm.Instruction{}, false
	}
	return addMove(body[1], body[3])
}

// [>>+<<-], [<<+>>-]
func moveLoopSwapped(w []vm.Instruction) (vm.Instruction, bool) {
	body, ok := loop(w, 4)
	if !ok || body[1] != vm.Add(1) || body[3] != vm.Add(255) {
		return vm.Instruction{}, false
	}
	return addMove(body[0], body[2])
}

func addMove(there, back vm.Instruction) (vm.Instruction, bool) {
	if !opposite(there, back) {
		return vm.Instruction{}, false
	}
	if there.Op == vm.OpRight {
		return vm.AddMoveRight(there.Arg), true
	}
	return vm.AddMoveLeft(there.Arg), true
}

// [-]> and [-]<, then merge adjacent zero areas.
func zeroStep(w []vm.Instruction) (vm.Instruction, bool) {
	if w[0] != vm.Zero {
		return vm.Instruction{}, false
	}
	switch w[1] {
	case vm.Right(1):
		return vm.ZeroRight(1), true
	case vm.Left(1):
		return vm.ZeroLeft(1), true
	}
	return vm.Instruction{}, false
}

func zeroMerge(w []vm.Instruction) (vm.Instruction, bool) {
	a, b := w[0], w[1]
	if a.Op != b.Op || a.Op != vm.OpZeroRight && a.Op != vm.OpZeroLeft {
		return vm.Instruction{}, false
	}
	n := int(a.Arg) + int(b.Arg)
	if n > math.MaxUint16 {
		return vm.Instruction{}, false
	}
	return vm.Instruction{Op: a.Op, Arg: uint16(n)}, true
}

// [>[->+<]<<]: while the current cell is not zero, move the cell at offset x
// to offset x+n, then step n cells left.
func mandelLoop(w []vm.Instruction) (vm.Instruction, bool) {
	body, ok := loop(w, 3)
	if !ok || body[0].Op != vm.OpRight || body[1].Op != vm.OpAddMoveRight || body[2].Op != vm.OpLeft {
		return vm.Instruction{}, false
	}
	x, n, q := int(body[0].Arg), int(body[1].Arg), int(body[2].Arg)
	if x+n != q {
		return vm.Instruction{}, false
	}
	return vm.Mandel(body[0].Arg, body[1].Arg), true
}
