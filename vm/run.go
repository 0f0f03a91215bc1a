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

import "github.com/pkg/errors"

// Run starts execution of the VM.
//
// If an error occurs, the PC will will point to the instruction that triggered
// the error. I/O errors are reported as an *IOError.
//
// The program terminates successfully when it reaches a halt instruction or
// runs past its last instruction, in which case the output is flushed if it
// implements Flush() error.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = errors.Errorf("pc %d: %v", i.PC, e)
		}
	}()
	i.insCount = 0
	p := i.Program
	for i.PC < len(p) {
		in := p[i.PC]
		switch in.Op {
		case OpAdd:
			i.Tape[i.Ptr] += byte(in.Arg)
		case OpRight:
			i.Ptr = i.right(i.Ptr, int(in.Arg))
		case OpLeft:
			i.Ptr = i.left(i.Ptr, int(in.Arg))
		case OpJez:
			if i.Tape[i.Ptr] == 0 {
				i.PC += int(in.Arg)
			}
		case OpJnz:
			if i.Tape[i.Ptr] != 0 {
				i.PC -= int(in.Arg)
			}
		case OpZero:
			i.Tape[i.Ptr] = 0
		case OpSearchLeft:
			for i.Tape[i.Ptr] != 0 {
				i.Ptr = i.left(i.Ptr, int(in.Arg))
			}
		case OpSearchRight:
			for i.Tape[i.Ptr] != 0 {
				i.Ptr = i.right(i.Ptr, int(in.Arg))
			}
		case OpAddMoveLeft:
			i.addMove(i.left(i.Ptr, int(in.Arg)))
		case OpAddMoveRight:
			i.addMove(i.right(i.Ptr, int(in.Arg)))
		case OpZeroLeft:
			i.zeroLeft(int(in.Arg))
		case OpZeroRight:
			i.zeroRight(int(in.Arg))
		case OpMandel:
			i.mandel(int(in.Arg), int(in.Arg2))
		case OpWrite:
			if err = i.write(); err != nil {
				return err
			}
		case OpRead:
			if err = i.read(); err != nil {
				return err
			}
		case OpHalt:
			i.insCount++
			return i.flush()
		default:
			return errors.Errorf("pc %d: invalid opcode %v", i.PC, in.Op)
		}
		i.PC++
		i.insCount++
	}
	return i.flush()
}
