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

package hackcpu

import "github.com/pkg/errors"

const ramSize = 24577 // enough to cover SCREEN (16384..24575) and KBD (24576)

// Option configures an Instance at construction time.
type Option func(*Instance) error

// RAMSize overrides the default RAM size.
func RAMSize(n int) Option {
	return func(i *Instance) error {
		if n < firstVarAddr {
			return errors.Errorf("RAM size %d too small", n)
		}
		i.ram = make([]int16, n)
		return nil
	}
}

// Instance is a Hack CPU: a program counter, the A and D registers, and
// a RAM array addressed by A. ROM holds the assembled program.
type Instance struct {
	PC  int
	A   int16
	D   int16
	ROM []uint16
	ram []int16

	insCount int64
}

// New creates an Instance ready to run rom.
func New(rom []uint16, opts ...Option) (*Instance, error) {
	i := &Instance{ROM: rom}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}
	if i.ram == nil {
		i.ram = make([]int16, ramSize)
	}
	return i, nil
}

// RAM returns the word at address addr.
func (i *Instance) RAM(addr int) int16 {
	return i.ram[addr]
}

// SetRAM sets the word at address addr.
func (i *Instance) SetRAM(addr int, v int16) {
	i.ram[addr] = v
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
