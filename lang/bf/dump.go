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

package bf

import (
	"io"

	"github.com/db47h/bfvm/internal/bfi"
	"github.com/db47h/bfvm/vm"
)

func dumpSlice(w *bfi.ErrWriter, prefix byte, a []byte) error {
	w.WriteByte(prefix)
	for i, c := range a {
		if i > 0 {
			w.WriteByte(' ')
		}
		w.WriteInt(int(c), 0)
	}
	return w.Err
}

// DumpVM dumps the tape pointer, program counter and the first cells of the
// tape to the specified io.Writer. Fields are separated by '\x1D', the first
// field is preceded by '\x1C'.
func DumpVM(i *vm.Instance, cells int, w io.Writer) error {
	if cells > len(i.Tape) || cells < 0 {
		cells = len(i.Tape)
	}
	ew := bfi.NewErrWriter(w)
	ew.WriteByte('\x1C')
	ew.WriteInt(i.Ptr, 0)
	ew.WriteByte('\x1D')
	ew.WriteInt(i.PC, 0)
	return dumpSlice(ew, '\x1D', i.Tape[:cells])
}
