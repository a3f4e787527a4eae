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

// compDecode maps the (a, c1..c6) field of a C-instruction to the
// function it computes, keyed by a<<7|bits using the same encoding
// Assemble produces.
var compDecode = map[int]func(d, a, m int16) int16{
	0<<7 | 0b0101010: func(d, a, m int16) int16 { return 0 },
	0<<7 | 0b0111111: func(d, a, m int16) int16 { return 1 },
	0<<7 | 0b0111010: func(d, a, m int16) int16 { return -1 },
	0<<7 | 0b0001100: func(d, a, m int16) int16 { return d },
	0<<7 | 0b0110000: func(d, a, m int16) int16 { return a },
	0<<7 | 0b0001101: func(d, a, m int16) int16 { return ^d },
	0<<7 | 0b0110001: func(d, a, m int16) int16 { return ^a },
	0<<7 | 0b0001111: func(d, a, m int16) int16 { return -d },
	0<<7 | 0b0110011: func(d, a, m int16) int16 { return -a },
	0<<7 | 0b0011111: func(d, a, m int16) int16 { return d + 1 },
	0<<7 | 0b0110111: func(d, a, m int16) int16 { return a + 1 },
	0<<7 | 0b0001110: func(d, a, m int16) int16 { return d - 1 },
	0<<7 | 0b0110010: func(d, a, m int16) int16 { return a - 1 },
	0<<7 | 0b0000010: func(d, a, m int16) int16 { return d + a },
	0<<7 | 0b0010011: func(d, a, m int16) int16 { return d - a },
	0<<7 | 0b0000111: func(d, a, m int16) int16 { return a - d },
	0<<7 | 0b0000000: func(d, a, m int16) int16 { return d & a },
	0<<7 | 0b0010101: func(d, a, m int16) int16 { return d | a },
	1<<7 | 0b0110000: func(d, a, m int16) int16 { return m },
	1<<7 | 0b0110001: func(d, a, m int16) int16 { return ^m },
	1<<7 | 0b0110011: func(d, a, m int16) int16 { return -m },
	1<<7 | 0b0110111: func(d, a, m int16) int16 { return m + 1 },
	1<<7 | 0b0110010: func(d, a, m int16) int16 { return m - 1 },
	1<<7 | 0b0000010: func(d, a, m int16) int16 { return d + m },
	1<<7 | 0b0010011: func(d, a, m int16) int16 { return d - m },
	1<<7 | 0b0000111: func(d, a, m int16) int16 { return m - d },
	1<<7 | 0b0000000: func(d, a, m int16) int16 { return d & m },
	1<<7 | 0b0010101: func(d, a, m int16) int16 { return d | m },
}

// Run executes instructions starting at the current PC until PC reaches
// toPC or runs past the end of ROM. A negative toPC means "run to
// completion of the image". It returns the PC at which execution
// stopped and insLimit guards against runaway loops in malformed test
// programs.
func (i *Instance) Run(toPC int, insLimit int64) (pc int, err error) {
	defer func() {
		if e := recover(); e != nil {
			err = errors.Errorf("%v", e)
			pc = i.PC
		}
	}()

	for i.PC != toPC && (i.PC < len(i.ROM)) {
		if insLimit > 0 && i.insCount >= insLimit {
			return i.PC, errors.Errorf("instruction limit %d exceeded", insLimit)
		}
		word := i.ROM[i.PC]
		if word&0x8000 == 0 {
			i.A = int16(word)
			i.PC++
			i.insCount++
			continue
		}

		a := int((word >> 12) & 1)
		c := int((word >> 6) & 0x3F)
		dest := int((word >> 3) & 0x7)
		jump := int(word & 0x7)

		compute, ok := compDecode[a<<7|c]
		if !ok {
			panic(errors.Errorf("unknown comp field at PC %d", i.PC))
		}

		addr := int(i.A)
		result := compute(i.D, i.A, i.ram[addr])

		if dest&0b100 != 0 {
			i.A = result
		}
		if dest&0b010 != 0 {
			i.D = result
		}
		if dest&0b001 != 0 {
			i.ram[addr] = result
		}

		jumpTaken := false
		switch jump {
		case 0b000:
		case 0b001:
			jumpTaken = result > 0
		case 0b010:
			jumpTaken = result == 0
		case 0b011:
			jumpTaken = result >= 0
		case 0b100:
			jumpTaken = result < 0
		case 0b101:
			jumpTaken = result != 0
		case 0b110:
			jumpTaken = result <= 0
		case 0b111:
			jumpTaken = true
		}

		if jumpTaken {
			i.PC = addr
		} else {
			i.PC++
		}
		i.insCount++
	}
	return i.PC, nil
}
