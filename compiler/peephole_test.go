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

package compiler_test

import (
	"github.com/db47h/bfvm/compiler"
	"github.com/db47h/bfvm/vm"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tliron/commonlog"
)

var _ = Describe("Optimize", func() {
	Context("when folding clear loops", func() {
		It("should fold [-] and [+]", func() {
			p := vm.Program{vm.Jez(2), vm.Add(255), vm.Jnz(2), vm.Jez(2), vm.Add(1), vm.Jnz(2)}
			Expect(compiler.Optimize(p)).To(Equal(vm.Program{vm.Zero}))
		})

		It("should leave other single instruction loops alone", func() {
			p := vm.Program{vm.Jez(2), vm.Add(2), vm.Jnz(2)}
			Expect(compiler.Optimize(p)).To(Equal(p))
		})

		It("should merge adjacent zeros", func() {
			p := vm.Program{vm.Zero, vm.Zero, vm.Zero, vm.Write}
			Expect(compiler.Optimize(p)).To(Equal(vm.Program{vm.Zero, vm.Write}))
		})
	})

	Context("when folding search loops", func() {
		It("should fold [>>>] and [<]", func() {
			p := vm.Program{vm.Jez(2), vm.Right(3), vm.Jnz(2), vm.Jez(2), vm.Left(1), vm.Jnz(2)}
			Expect(compiler.Optimize(p)).To(Equal(vm.Program{vm.SearchRight(3), vm.SearchLeft(1)}))
		})
	})

	Context("when folding move loops", func() {
		It("should fold [->>+<<]", func() {
			p := vm.Program{vm.Jez(5), vm.Add(255), vm.Right(2), vm.Add(1), vm.Left(2), vm.Jnz(5)}
			Expect(compiler.Optimize(p)).To(Equal(vm.Program{vm.AddMoveRight(2)}))
		})

		It("should fold [-<+>]", func() {
			p := vm.Program{vm.Jez(5), vm.Add(255), vm.Left(1), vm.Add(1), vm.Right(1), vm.Jnz(5)}
			Expect(compiler.Optimize(p)).To(Equal(vm.Program{vm.AddMoveLeft(1)}))
		})

		It("should fold [>+<-]", func() {
			p := vm.Program{vm.Jez(5), vm.Right(1), vm.Add(1), vm.Left(1), vm.Add(255), vm.Jnz(5)}
			Expect(compiler.Optimize(p)).To(Equal(vm.Program{vm.AddMoveRight(1)}))
		})

		It("should not fold unbalanced moves", func() {
			p := vm.Program{vm.Jez(5), vm.Add(255), vm.Right(2), vm.Add(1), vm.Left(1), vm.Jnz(5)}
			Expect(compiler.Optimize(p)).To(Equal(p))
		})

		It("should not fold multiplications", func() {
			p := vm.Program{vm.Jez(5), vm.Add(255), vm.Right(1), vm.Add(2), vm.Left(1), vm.Jnz(5)}
			Expect(compiler.Optimize(p)).To(Equal(p))
		})
	})

	Context("when folding zero areas", func() {
		It("should fold a run of [-]>", func() {
			p := vm.Program{vm.Zero, vm.Right(1), vm.Zero, vm.Right(1), vm.Zero, vm.Right(1)}
			Expect(compiler.Optimize(p)).To(Equal(vm.Program{vm.ZeroRight(3)}))
			Expect(compiler.New(compiler.Fixpoint(false)).Optimize(p)).To(Equal(vm.Program{vm.ZeroRight(3)}))
		})

		It("should fold a run of [-]<", func() {
			p := vm.Program{vm.Zero, vm.Left(1), vm.Zero, vm.Left(1), vm.Write}
			Expect(compiler.Optimize(p)).To(Equal(vm.Program{vm.ZeroLeft(2), vm.Write}))
		})

		It("should not fold a larger step", func() {
			p := vm.Program{vm.Zero, vm.Right(2)}
			Expect(compiler.Optimize(p)).To(Equal(p))
		})

		It("should not merge areas beyond the operand range", func() {
			p := vm.Program{vm.ZeroRight(65535), vm.ZeroRight(1)}
			Expect(compiler.Optimize(p)).To(Equal(p))
		})
	})

	Context("when folding diffusion loops", func() {
		It("should fold [>[->+<]<<]", func() {
			p := vm.Program{vm.Jez(4), vm.Right(1), vm.AddMoveRight(1), vm.Left(2), vm.Jnz(4)}
			Expect(compiler.Optimize(p)).To(Equal(vm.Program{vm.Mandel(1, 1)}))
		})

		It("should fold the unfused form", func() {
			p := vm.Program{
				vm.Jez(9),
				vm.Right(1),
				vm.Jez(5), vm.Add(255), vm.Right(1), vm.Add(1), vm.Left(1), vm.Jnz(5),
				vm.Left(2),
				vm.Jnz(9),
			}
			Expect(compiler.Optimize(p)).To(Equal(vm.Program{vm.Mandel(1, 1)}))
		})

		It("should not fold when the pointer does not step back by n", func() {
			p := vm.Program{vm.Jez(4), vm.Right(1), vm.AddMoveRight(1), vm.Left(3), vm.Jnz(4)}
			Expect(compiler.Optimize(p)).To(Equal(p))
		})
	})

	Context("when rewriting nested loops", func() {
		It("should relink jumps", func() {
			// [[-]>]
			p := vm.Program{vm.Jez(4), vm.Jez(2), vm.Add(255), vm.Jnz(2), vm.Right(1), vm.Jnz(4)}
			Expect(compiler.Optimize(p)).To(Equal(vm.Program{vm.Jez(2), vm.ZeroRight(1), vm.Jnz(2)}))
		})

		It("should repeat passes until nothing changes", func() {
			// [[-]]
			p := vm.Program{vm.Jez(4), vm.Jez(2), vm.Add(255), vm.Jnz(2), vm.Jnz(4)}
			Expect(compiler.Optimize(p)).To(Equal(vm.Program{vm.Zero}))
			Expect(compiler.New(compiler.Fixpoint(false)).Optimize(p)).
				To(Equal(vm.Program{vm.Jez(2), vm.Zero, vm.Jnz(2)}))
		})
	})

	It("should log without changing the result", func() {
		p := vm.Program{vm.Jez(4), vm.Jez(2), vm.Add(255), vm.Jnz(2), vm.Right(1), vm.Jnz(4)}
		c := compiler.New(compiler.Logger(commonlog.GetLogger("bfvm.compiler")))
		Expect(c.Optimize(p)).To(Equal(compiler.Optimize(p)))
	})

	It("should not modify its input", func() {
		p := vm.Program{vm.Jez(2), vm.Add(255), vm.Jnz(2)}
		q := append(vm.Program(nil), p...)
		compiler.Optimize(p)
		Expect(p).To(Equal(q))
	})

	It("should be idempotent", func() {
		p := vm.Program{
			vm.Add(3), vm.Jez(4), vm.Jez(2), vm.Add(1), vm.Jnz(2), vm.Right(1), vm.Jnz(4),
			vm.Zero, vm.Zero, vm.Left(1),
			vm.Jez(5), vm.Right(3), vm.Add(1), vm.Left(3), vm.Add(255), vm.Jnz(5),
			vm.Write, vm.Halt,
		}
		q := compiler.Optimize(p)
		Expect(compiler.Optimize(q)).To(Equal(q))
	})
})
