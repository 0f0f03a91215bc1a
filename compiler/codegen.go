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
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

// maxBody is the largest loop body whose jump distance fits in an operand.
const maxBody = math.MaxUint16 - 1

// Compiler generates VM code from an operation tree.
type Compiler struct {
	peephole bool
	fixpoint bool
	log      commonlog.Logger
}

// Option interface
type Option func(*Compiler)

// Peephole enables or disables the peephole optimizer. The default is true.
func Peephole(enable bool) Option {
	return func(c *Compiler) { c.peephole = enable }
}

// Fixpoint controls whether the optimizer repeats its passes until no more
// rewrites occur (the default), or runs them only once.
func Fixpoint(enable bool) Option {
	return func(c *Compiler) { c.fixpoint = enable }
}

// Logger sets the logger used to report rewrite statistics at debug level.
func Logger(l commonlog.Logger) Option {
	return func(c *Compiler) { c.log = l }
}

// New returns a new Compiler.
func New(opts ...Option) *Compiler {
	c := &Compiler{peephole: true, fixpoint: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate compiles the nodes with the default options.
func Generate(nodes []Node) (vm.Program, error) {
	return New().Generate(nodes)
}

// Generate compiles the given nodes.
//
// Runs of increments and decrements are folded into a single add, runs of
// moves into a single right or left. Runs with a zero net effect do not
// generate any code. Loop bodies are compiled and optimized before the
// surrounding jumps are emitted, so that the jump distances match the final
// body length. The nodes are not modified.
func (c *Compiler) Generate(nodes []Node) (vm.Program, error) {
	return c.generate(nodes)
}

func (c *Compiler) generate(nodes []Node) (vm.Program, error) {
	var p vm.Program
	for k := 0; k < len(nodes); {
		switch nodes[k].Kind {
		case NodeLoop:
			body, err := c.generate(nodes[k].Body)
			if err != nil {
				return nil, err
			}
			if len(body) > maxBody {
				return nil, errors.Errorf("loop body too large: %d instructions", len(body))
			}
			d := uint16(len(body) + 1)
			p = append(p, vm.Jez(d))
			p = append(p, body...)
			p = append(p, vm.Jnz(d))
			k++
		case NodeInc, NodeDec:
			var delta uint8
			for ; k < len(nodes); k++ {
				if nodes[k].Kind == NodeInc {
					delta++
				} else if nodes[k].Kind == NodeDec {
					delta--
				} else {
					break
				}
			}
			if delta != 0 {
				p = append(p, vm.Add(delta))
			}
		case NodeRight, NodeLeft:
			var disp int
			for ; k < len(nodes); k++ {
				if nodes[k].Kind == NodeRight {
					disp++
				} else if nodes[k].Kind == NodeLeft {
					disp--
				} else {
					break
				}
			}
			p = appendShift(p, disp)
		case NodeOutput:
			p = append(p, vm.Write)
			k++
		case NodeInput:
			p = append(p, vm.Read)
			k++
		case NodeHalt:
			p = append(p, vm.Halt)
			k++
		default:
			return nil, errors.Errorf("unknown node kind %v", nodes[k].Kind)
		}
	}
	if c.peephole {
		p = c.Optimize(p)
	}
	return p, nil
}

// appendShift appends the shortest sequence of moves with a net displacement
// of disp.
func appendShift(p vm.Program, disp int) vm.Program {
	shift := vm.Right
	if disp < 0 {
		shift, disp = vm.Left, -disp
	}
	for ; disp > math.MaxUint16; disp -= math.MaxUint16 {
		p = append(p, shift(math.MaxUint16))
	}
	if disp > 0 {
		p = append(p, shift(uint16(disp)))
	}
	return p
}
