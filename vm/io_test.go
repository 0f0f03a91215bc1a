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

package vm_test

//go:generate mockgen -write_package_comment=false -package=$GOPACKAGE -destination=mock_io_test.go io Reader,Writer

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/db47h/bfvm/vm"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
)

var errBoom = errors.New("boom")

func TestIO_EOF(t *testing.T) {
	var b bytes.Buffer
	i := setup(t, "read write read write", vm.Input(strings.NewReader("A")), vm.Output(&b))
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	// the second read leaves the cell untouched
	assertEqual(t, "output", "AA", b.String())
}

func TestIO_none(t *testing.T) {
	i := setup(t, "add 7 read write")
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	assertEqualI(t, "cell", 7, int(i.Cell()))
}

func TestIO_inputStack(t *testing.T) {
	var b bytes.Buffer
	i := setup(t, "read write read write read write",
		vm.Input(strings.NewReader("c")),
		vm.Input(strings.NewReader("b")),
		vm.Output(&b))
	i.PushInput(strings.NewReader("a"))
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	assertEqual(t, "output", "abc", b.String())
}

func TestIO_flush(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var b bytes.Buffer
	w := bufio.NewWriter(&b)
	r := NewMockReader(ctrl)
	r.EXPECT().Read(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
		// output must be flushed before reading
		assertEqual(t, "prompt", "?", b.String())
		p[0] = '!'
		return 1, nil
	})
	i := setup(t, "add 63 write read write", vm.Input(r), vm.Output(w))
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	assertEqual(t, "output", "?!", b.String())
}

func TestIO_readError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := NewMockReader(ctrl)
	r.EXPECT().Read(gomock.Any()).Return(0, errBoom)
	i := setup(t, "add 1 read add 1", vm.Input(r))
	err := i.Run()
	ioe, ok := err.(*vm.IOError)
	if !ok {
		t.Fatalf("expected an *IOError, got %v", err)
	}
	if ioe.Op != vm.OpRead || ioe.PC != 1 {
		t.Errorf("bad op or pc: %v", ioe)
	}
	if errors.Cause(err) != errBoom {
		t.Errorf("bad cause: %v", errors.Cause(err))
	}
	assertEqualI(t, "cell", 1, int(i.Cell()))
	assertEqual(t, "message", "input failed at pc 1: read failed: boom", err.Error())
}

func TestIO_writeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := NewMockWriter(ctrl)
	gomock.InOrder(
		w.EXPECT().Write([]byte{'A'}).Return(1, nil),
		w.EXPECT().Write([]byte{'B'}).Return(0, errBoom),
	)
	i := setup(t, "add 65 write add 1 write add 1 write", vm.Output(w))
	err := i.Run()
	ioe, ok := err.(*vm.IOError)
	if !ok {
		t.Fatalf("expected an *IOError, got %v", err)
	}
	if ioe.Op != vm.OpWrite || ioe.PC != 3 {
		t.Errorf("bad op or pc: %v", ioe)
	}
	if errors.Cause(err) != errBoom {
		t.Errorf("bad cause: %v", errors.Cause(err))
	}
}

// data returned along with io.EOF is not lost when switching readers.
func TestIO_dataWithEOF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := NewMockReader(ctrl)
	r.EXPECT().Read(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
		p[0] = 'x'
		return 1, io.EOF
	})
	var b bytes.Buffer
	i := setup(t, "read write read write", vm.Input(r), vm.Input(strings.NewReader("y")), vm.Output(&b))
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	assertEqual(t, "output", "yx", b.String())
}
