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

// Package hackcpu assembles and executes Hack symbolic assembly. It
// exists to verify asm.Translator's output end to end: rather than
// diffing emitted text, a test assembles it with Assemble and runs it
// with an Instance, then inspects RAM and register state directly.
//
// Assemble is a two-pass assembler: the first pass walks the source
// resolving every label pseudo-instruction ((LABEL)) to the ROM address
// of the instruction that follows it; the second pass encodes every
// A- and C-instruction to its 16-bit word, allocating RAM slots starting
// at 16 for @symbol references that are neither a label nor one of the
// predefined symbols (SP, LCL, ARG, THIS, THAT, R0-R15, SCREEN, KBD).
//
// Instance executes the assembled program one instruction at a time,
// decoding each 16-bit word's comp/dest/jump fields and dispatching on
// them, the way a real Hack CPU's combinational logic would.
package hackcpu
