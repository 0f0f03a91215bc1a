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

// The bfvm command compiles and runs brainfuck programs with the
// github.com/db47h/bfvm packages.
//
// Usage:
//
//	bfvm [flags] program.bf
//
//	-config file
//		  load settings from TOML file (default "bfvm.toml")
//	-debug
//		  enable debug diagnostics
//	-disasm
//		  print the compiled program and exit
//	-dump n
//		  dump the pointer, pc and first n cells of the tape upon exit
//	-log file
//		  log to file instead of stderr
//	-noraw
//		  disable raw terminal IO
//	-nofix
//		  run the optimizer passes only once
//	-O
//		  enable the peephole optimizer (default true)
//	-tape int
//		  tape size in cells (default 30000)
//	-v
//		  increase verbosity (can be specified multiple times)
//	-with filename
//		  Add filename to the input list (can be specified multiple times)
//
// -config: settings are read from the given TOML file. If the flag is not
// set, bfvm.toml is loaded from the current directory if present. Flags set
// on the command line override the file. Recognized keys:
//
//	tape-size = 30000
//	optimize = true
//	fixpoint = true
//	raw = true
//	verbosity = 0
//	log-file = "bfvm.log"
//	with = ["input.txt"]
//
// -debug: will print a full stacktrace should the VM crash, along with the
// program counter and tape pointer.
//
// -dump: this flag is meant for test suites. After a successful run, it writes
// the tape pointer, program counter and tape cells to stdout, separated by
// control characters.
//
// -noraw: upon startup, bfvm switches the terminal to raw mode unless stdin
// has been redirected. In raw mode, CTRL-D ends the input. This flag disables
// this behavior.
//
// -O=false: disables the peephole optimizer. The program is then a plain
// translation of the source, with runs of + - > < folded.
//
// -v: with -v, bfvm logs the program size and the number of instructions
// executed. With -v -v, it also logs the optimizer's rewrite counts.
//
// -with: bfvm will feed the specified file to the program as input before
// stdin. If specified multiple times, files will be fed to the program in
// order of appearance on the command line, after those listed in the
// configuration file.
package main
