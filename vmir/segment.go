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

package vmir

import "github.com/pkg/errors"

// Segment identifies one of the VM's addressable memory segments.
type Segment int

const (
	SegConstant Segment = iota
	SegLocal
	SegArgument
	SegThis
	SegThat
	SegPointer
	SegTemp
	SegStatic
)

var segmentNames = map[string]Segment{
	"constant": SegConstant,
	"local":    SegLocal,
	"argument": SegArgument,
	"this":     SegThis,
	"that":     SegThat,
	"pointer":  SegPointer,
	"temp":     SegTemp,
	"static":   SegStatic,
}

func (s Segment) String() string {
	switch s {
	case SegConstant:
		return "constant"
	case SegLocal:
		return "local"
	case SegArgument:
		return "argument"
	case SegThis:
		return "this"
	case SegThat:
		return "that"
	case SegPointer:
		return "pointer"
	case SegTemp:
		return "temp"
	case SegStatic:
		return "static"
	default:
		return "unknown"
	}
}

// ParseSegment resolves a textual segment name. ok is false for any token
// that is not one of the eight legal segment names.
func ParseSegment(s string) (seg Segment, ok bool) {
	seg, ok = segmentNames[s]
	return seg, ok
}

// Validate checks index against the per-segment bounds: pointer in {0,1},
// temp in [0,7], static in [0,238], constant in [0,32767]; virtual-memory
// segments accept any non-negative index.
func (s Segment) Validate(index int) error {
	if index < 0 {
		return errors.Errorf("segment %s: negative index %d", s, index)
	}
	switch s {
	case SegPointer:
		if index > 1 {
			return errors.Errorf("segment pointer: index %d out of range [0,1]", index)
		}
	case SegTemp:
		if index > 7 {
			return errors.Errorf("segment temp: index %d out of range [0,7]", index)
		}
	case SegStatic:
		if index > 238 {
			return errors.Errorf("segment static: index %d out of range [0,238]", index)
		}
	case SegConstant:
		if index > 32767 {
			return errors.Errorf("segment constant: index %d out of range [0,32767]", index)
		}
	case SegLocal, SegArgument, SegThis, SegThat:
		// virtual-memory segments accept any non-negative index
	}
	return nil
}
