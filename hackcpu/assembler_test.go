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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleSimpleProgram(t *testing.T) {
	rom, err := Assemble([]string{
		"@2",
		"D=A",
		"@3",
		"D=D+A",
		"@0",
		"M=D",
	})
	require.NoError(t, err)
	require.Len(t, rom, 6)

	i, err := New(rom)
	require.NoError(t, err)
	_, err = i.Run(len(rom), 0)
	require.NoError(t, err)
	assert.EqualValues(t, 5, i.RAM(0))
}

func TestAssembleLabelsAndLoop(t *testing.T) {
	// sums 1..3 into RAM[0] via a loop.
	lines := []string{
		"@3",
		"D=A",
		"@1",
		"M=D", // R1 = counter
		"@0",
		"M=0", // R0 = sum
		"(LOOP)",
		"@1",
		"D=M",
		"@END",
		"D;JLE",
		"@1",
		"D=M",
		"@0",
		"M=D+M",
		"@1",
		"M=M-1",
		"@LOOP",
		"0;JMP",
		"(END)",
	}
	rom, err := Assemble(lines)
	require.NoError(t, err)

	i, err := New(rom)
	require.NoError(t, err)
	_, err = i.Run(len(rom), 10000)
	require.NoError(t, err)
	assert.EqualValues(t, 6, i.RAM(0))
}

func TestAssembleVariableAllocation(t *testing.T) {
	rom, err := Assemble([]string{
		"@foo",
		"M=1",
		"@bar",
		"M=1",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 16, rom[0])
	assert.EqualValues(t, 17, rom[2])
}

func TestAssembleUnknownComp(t *testing.T) {
	_, err := Assemble([]string{"D=Q"})
	require.Error(t, err)
	var asmErr AsmError
	require.ErrorAs(t, err, &asmErr)
}
