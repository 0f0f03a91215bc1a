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
	"strconv"
	"strings"
)

// NodeKind is the kind of an operation node.
type NodeKind uint8

// Operation node kinds.
const (
	NodeLoop NodeKind = iota
	NodeRight
	NodeLeft
	NodeInc
	NodeDec
	NodeOutput
	NodeInput
	NodeHalt
)

var nodeNames = [...]string{"[", ">", "<", "+", "-", ".", ",", "halt"}

func (k NodeKind) String() string {
	if int(k) < len(nodeNames) {
		return nodeNames[k]
	}
	return "node(" + strconv.Itoa(int(k)) + ")"
}

// Node is an operation node of the tree built by the front end. Only loops
// have a Body.
type Node struct {
	Kind NodeKind
	Body []Node
}

// Loop returns a loop node with the given body.
func Loop(body ...Node) Node {
	return Node{Kind: NodeLoop, Body: body}
}

// Leaf nodes.
var (
	Right  = Node{Kind: NodeRight}
	Left   = Node{Kind: NodeLeft}
	Inc    = Node{Kind: NodeInc}
	Dec    = Node{Kind: NodeDec}
	Output = Node{Kind: NodeOutput}
	Input  = Node{Kind: NodeInput}
	Halt   = Node{Kind: NodeHalt}
)

// String returns the source form of the node.
func (n Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n Node) write(b *strings.Builder) {
	switch n.Kind {
	case NodeLoop:
		b.WriteByte('[')
		for _, c := range n.Body {
			c.write(b)
		}
		b.WriteByte(']')
	case NodeHalt:
	default:
		b.WriteString(n.Kind.String())
	}
}

// Depth returns the loop nesting depth of the given nodes.
func Depth(nodes []Node) int {
	var d int
	for _, n := range nodes {
		if n.Kind == NodeLoop {
			if c := Depth(n.Body) + 1; c > d {
				d = c
			}
		}
	}
	return d
}
