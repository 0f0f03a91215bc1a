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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/db47h/bfvm/asm"
	"github.com/db47h/bfvm/compiler"
	"github.com/db47h/bfvm/lang/bf"
	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
	"github.com/tebeka/atexit"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

// verbosity is incremented each time the flag is found.
type verbosity int

func (v *verbosity) String() string   { return strconv.Itoa(int(*v)) }
func (v *verbosity) IsBoolFlag() bool { return true }
func (v *verbosity) Get() interface{} { return int(*v) }
func (v *verbosity) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if b {
		*v++
	}
	return nil
}

var (
	debug bool
	log   = commonlog.GetLogger("bfvm")
)

// ctrlD turns CTRL-D into EOF when the terminal is in raw mode.
type ctrlD struct {
	r io.Reader
}

func (c ctrlD) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	for k := 0; k < n; k++ {
		if p[k] == 4 {
			return k, io.EOF
		}
	}
	return n, err
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		atexit.Exit(0)
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		atexit.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		if i.PC < len(i.Program) {
			fmt.Fprintf(os.Stderr, "PC: %v (%v), Ptr: %v, Cell: %v\n", i.PC, i.Program[i.PC], i.Ptr, i.Cell())
		} else {
			fmt.Fprintf(os.Stderr, "PC: %v, Ptr: %v, Cell: %v\n", i.PC, i.Ptr, i.Cell())
		}
	}
	atexit.Exit(1)
}

func compile(name string, c Config) (vm.Program, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return bf.Compile(name, bufio.NewReader(f),
		compiler.Peephole(c.Optimize),
		compiler.Fixpoint(c.Fixpoint),
		compiler.Logger(commonlog.GetLogger("bfvm.compiler")))
}

func main() {
	// check exit condition
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { stdout.Flush() })

	defer func() {
		atExit(i, err)
	}()

	var (
		withFiles fileList
		verbose   verbosity
	)
	configFile := flag.String("config", "bfvm.toml", "load settings from TOML `file`")
	tape := flag.Int("tape", vm.DefaultTapeSize, "tape size in cells")
	optimize := flag.Bool("O", true, "enable the peephole optimizer")
	noFix := flag.Bool("nofix", false, "run the optimizer passes only once")
	flag.Var(&withFiles, "with", "Add `filename` to the input list (can be specified multiple times)")
	noRaw := flag.Bool("noraw", false, "disable raw terminal IO")
	disasm := flag.Bool("disasm", false, "print the compiled program and exit")
	dump := flag.Int("dump", 0, "dump the pointer, pc and first `n` cells of the tape upon exit")
	flag.Var(&verbose, "v", "increase verbosity (can be specified multiple times)")
	logFile := flag.String("log", "", "log to `file` instead of stderr")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] program.bf\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	var set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	c, unknown, err := loadConfig(*configFile, set["config"])
	if err != nil {
		return
	}
	if set["tape"] {
		c.TapeSize = *tape
	}
	if set["O"] {
		c.Optimize = *optimize
	}
	if set["nofix"] {
		c.Fixpoint = !*noFix
	}
	if set["noraw"] {
		c.Raw = !*noRaw
	}
	if set["v"] {
		c.Verbosity = int(verbose)
	}
	if set["log"] {
		c.LogFile = *logFile
	}
	c.With = append(c.With, withFiles...)

	var logPath *string
	if c.LogFile != "" {
		logPath = &c.LogFile
	}
	commonlog.Configure(c.Verbosity, logPath)
	for _, k := range unknown {
		log.Warningf("%s: unknown setting %q", *configFile, k)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		err = errors.New("expected exactly one program file")
		return
	}
	name := flag.Arg(0)

	p, err := compile(name, c)
	if err != nil {
		return
	}
	log.Infof("compiled %s: %d instructions", name, len(p))

	if *disasm {
		err = asm.DisassembleAll(p, 0, stdout)
		return
	}

	// try to switch the terminal to raw mode.
	var opts = []vm.Option{
		vm.TapeSize(c.TapeSize),
		vm.Output(stdout),
	}
	var rawtty bool
	if c.Raw {
		tearDown, e := setRawIO()
		if e == nil {
			atexit.Register(tearDown)
			rawtty = true
		} else {
			log.Debugf("raw IO disabled: %v", e)
		}
	}
	if rawtty {
		opts = append(opts, vm.Input(ctrlD{os.Stdin}))
	} else {
		opts = append(opts, vm.Input(bufio.NewReader(os.Stdin)))
	}

	// push -with files in reverse order so that they are read in order of
	// appearance, before stdin.
	for n := len(c.With) - 1; n >= 0; n-- {
		var f *os.File
		f, err = os.Open(c.With[n])
		if err != nil {
			return
		}
		opts = append(opts, vm.Input(bufio.NewReader(f)))
	}

	i, err = vm.New(p, opts...)
	if err != nil {
		return
	}
	err = i.Run()
	log.Infof("executed %d instructions", i.InstructionCount())
	if err == nil && *dump > 0 {
		err = bf.DumpVM(i, *dump, stdout)
	}
}
