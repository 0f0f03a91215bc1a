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

// Tape arithmetic. All pointer moves wrap around both ends of the tape.

// right returns the index n cells to the right of pos.
func (i *Instance) right(pos, n int) int {
	return (pos + n) % len(i.Tape)
}

// left returns the index n cells to the left of pos.
func (i *Instance) left(pos, n int) int {
	l := len(i.Tape)
	return (pos - n%l + l) % l
}

// zeroRight clears n cells starting under the pointer, leaving the pointer
// n cells to the right.
func (i *Instance) zeroRight(n int) {
	if n >= len(i.Tape) {
		clear(i.Tape)
		i.Ptr = i.right(i.Ptr, n)
		return
	}
	for ; n > 0; n-- {
		i.Tape[i.Ptr] = 0
		i.Ptr = i.right(i.Ptr, 1)
	}
}

// zeroLeft is the mirror of zeroRight.
func (i *Instance) zeroLeft(n int) {
	if n >= len(i.Tape) {
		clear(i.Tape)
		i.Ptr = i.left(i.Ptr, n)
		return
	}
	for ; n > 0; n-- {
		i.Tape[i.Ptr] = 0
		i.Ptr = i.left(i.Ptr, 1)
	}
}

// addMove adds the current cell to the cell at index to and clears it.
func (i *Instance) addMove(to int) {
	i.Tape[to] += i.Tape[i.Ptr]
	i.Tape[i.Ptr] = 0
}

// mandel runs the fused diffusion loop.
func (i *Instance) mandel(x, n int) {
	for i.Tape[i.Ptr] != 0 {
		src := i.right(i.Ptr, x)
		dst := i.right(src, n)
		i.Tape[dst] += i.Tape[src]
		i.Tape[src] = 0
		i.Ptr = i.left(i.Ptr, n)
	}
}
