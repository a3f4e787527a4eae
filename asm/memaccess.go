// Copyright 2026 The vmtranslate Authors
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

package asm

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/hackforth/vmtranslate/vmir"
)

// segmentBase names the register holding a pointer-indirect segment's
// base address.
var segmentBase = map[vmir.Segment]string{
	vmir.SegLocal:    "LCL",
	vmir.SegArgument: "ARG",
	vmir.SegThis:     "THIS",
	vmir.SegThat:     "THAT",
}

// staticSymbol returns the file-scoped symbol backing static i.
func (t *Translator) staticSymbol(index int) string {
	return t.fileBase + "." + strconv.Itoa(index)
}

// lowerPush resolves segment/index to a source value in D and pushes it.
func (t *Translator) lowerPush(seg vmir.Segment, index int) ([]string, error) {
	var load []string
	switch seg {
	case vmir.SegConstant:
		load = []string{"@" + strconv.Itoa(index), "D=A"}

	case vmir.SegLocal, vmir.SegArgument, vmir.SegThis, vmir.SegThat:
		load = []string{
			"@" + strconv.Itoa(index),
			"D=A",
			"@" + segmentBase[seg],
			"A=D+M",
			"D=M",
		}

	case vmir.SegPointer:
		load = []string{"@" + pointerTarget(index), "D=M"}

	case vmir.SegTemp:
		load = []string{"@" + strconv.Itoa(5+index), "D=M"}

	case vmir.SegStatic:
		load = []string{"@" + t.staticSymbol(index), "D=M"}

	default:
		return nil, errors.Errorf("internal error: unhandled segment %v", seg)
	}

	return append(load, pushD()...), nil
}

// lowerPop resolves segment/index to a destination address and pops the
// top of the stack into it. For local, argument, this and that the
// address is computed into R13 first, before the stack is touched:
// popping first would destroy the base-plus-offset arithmetic's working
// register. Pointer, temp and static have fixed addresses and are popped
// straight into them.
func (t *Translator) lowerPop(seg vmir.Segment, index int) ([]string, error) {
	var dest []string
	switch seg {
	case vmir.SegLocal, vmir.SegArgument, vmir.SegThis, vmir.SegThat:
		dest = []string{
			"@" + strconv.Itoa(index),
			"D=A",
			"@" + segmentBase[seg],
			"D=D+M",
			"@R13",
			"M=D",
		}
		return append(dest,
			"@SP",
			"AM=M-1",
			"D=M",
			"@R13",
			"A=M",
			"M=D",
		), nil

	case vmir.SegPointer:
		return []string{
			"@SP",
			"AM=M-1",
			"D=M",
			"@" + pointerTarget(index),
			"M=D",
		}, nil

	case vmir.SegTemp:
		return []string{
			"@SP",
			"AM=M-1",
			"D=M",
			"@" + strconv.Itoa(5+index),
			"M=D",
		}, nil

	case vmir.SegStatic:
		return []string{
			"@SP",
			"AM=M-1",
			"D=M",
			"@" + t.staticSymbol(index),
			"M=D",
		}, nil

	default:
		return nil, errors.Errorf("internal error: unhandled segment %v", seg)
	}
}

// pointerTarget maps pointer 0/1 to the THIS/THAT base registers.
func pointerTarget(index int) string {
	if index == 0 {
		return "THIS"
	}
	return "THAT"
}
