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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineBlank(t *testing.T) {
	for _, raw := range []string{"", "   ", "// just a comment", "  // indented comment"} {
		cmd, blank, err := ParseLine("f", 1, raw)
		require.NoError(t, err)
		assert.True(t, blank)
		assert.Equal(t, Command{}, cmd)
	}
}

func TestParseLineArithmetic(t *testing.T) {
	cmd, blank, err := ParseLine("f", 3, "add // sum")
	require.NoError(t, err)
	assert.False(t, blank)
	assert.Equal(t, KindArith, cmd.Kind)
	assert.Equal(t, OpAdd, cmd.Arith)
	assert.Equal(t, 3, cmd.Line)
}

func TestParseLineComparison(t *testing.T) {
	cmd, _, err := ParseLine("f", 1, "lt")
	require.NoError(t, err)
	assert.Equal(t, KindComp, cmd.Kind)
	assert.Equal(t, OpLt, cmd.Comp)
}

func TestParseLinePushPop(t *testing.T) {
	cmd, _, err := ParseLine("f", 1, "push constant 7")
	require.NoError(t, err)
	assert.Equal(t, KindPush, cmd.Kind)
	assert.Equal(t, SegConstant, cmd.Segment)
	assert.Equal(t, 7, cmd.Index)

	cmd, _, err = ParseLine("f", 2, "pop local 2")
	require.NoError(t, err)
	assert.Equal(t, KindPop, cmd.Kind)
	assert.Equal(t, SegLocal, cmd.Segment)
}

func TestParseLinePopConstantRejected(t *testing.T) {
	_, _, err := ParseLine("f", 1, "pop constant 3")
	require.Error(t, err)
	var semErr *SemanticError
	require.ErrorAs(t, err, &semErr)
}

func TestParseLineSegmentBounds(t *testing.T) {
	_, _, err := ParseLine("f", 1, "push temp 8")
	require.Error(t, err)
	var semErr *SemanticError
	require.ErrorAs(t, err, &semErr)

	_, _, err = ParseLine("f", 1, "push pointer 2")
	require.Error(t, err)

	_, _, err = ParseLine("f", 1, "push static 238")
	require.NoError(t, err)
}

func TestParseLineUnknownOpcode(t *testing.T) {
	_, _, err := ParseLine("f", 5, "frobnicate")
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 5, parseErr.Line)
}

func TestParseLineArity(t *testing.T) {
	_, _, err := ParseLine("f", 1, "push constant")
	require.Error(t, err)

	_, _, err = ParseLine("f", 1, "add 1")
	require.Error(t, err)
}

func TestParseLineLabelsAndBranches(t *testing.T) {
	cmd, _, err := ParseLine("f", 1, "label LOOP")
	require.NoError(t, err)
	assert.Equal(t, KindLabel, cmd.Kind)
	assert.Equal(t, "LOOP", cmd.Name)

	cmd, _, err = ParseLine("f", 1, "goto LOOP")
	require.NoError(t, err)
	assert.Equal(t, KindGoto, cmd.Kind)

	cmd, _, err = ParseLine("f", 1, "if-goto LOOP")
	require.NoError(t, err)
	assert.Equal(t, KindIfGoto, cmd.Kind)
}

func TestParseLineIllegalIdentifier(t *testing.T) {
	_, _, err := ParseLine("f", 1, "label 9bad")
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseLineFunctionCall(t *testing.T) {
	cmd, _, err := ParseLine("f", 1, "function Main.fibonacci 0")
	require.NoError(t, err)
	assert.Equal(t, KindFunction, cmd.Kind)
	assert.Equal(t, "Main.fibonacci", cmd.Name)
	assert.Equal(t, 0, cmd.NLocals)

	cmd, _, err = ParseLine("f", 1, "call Main.fibonacci 1")
	require.NoError(t, err)
	assert.Equal(t, KindCall, cmd.Kind)
	assert.Equal(t, 1, cmd.NArgs)

	cmd, _, err = ParseLine("f", 1, "return")
	require.NoError(t, err)
	assert.Equal(t, KindReturn, cmd.Kind)
}

func TestCommandSourceRoundTrip(t *testing.T) {
	cmd, _, err := ParseLine("f", 1, "push local 3")
	require.NoError(t, err)
	assert.Equal(t, "push local 3", cmd.Source())

	cmd, _, err = ParseLine("f", 1, "call Sys.init 0")
	require.NoError(t, err)
	assert.Equal(t, "call Sys.init 0", cmd.Source())
}
