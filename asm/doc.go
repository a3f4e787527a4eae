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

// Package asm lowers vmir.Command values into lines of Hack symbolic
// assembly: A-instructions (@value), C-instructions (dest=comp;jump) and
// label pseudo-instructions ((LABEL)).
//
// A Translator is the driver: it owns the per-run context (current file,
// current function, the translation-unit-wide comparison counter and the
// per-function call counter) and dispatches each vmir.Command to the
// matching lowering routine:
//
//	add sub neg and or not    arithmetic/logical
//	eq lt gt                  comparisons, one fresh label pair per emission
//	push / pop SEG I          memory access across all 8 segments
//	label / goto / if-goto    branching, labels mangled per function
//	function f k / call f n   function declaration and invocation
//	return                    frame teardown and control transfer
//
// TranslateFile feeds one file's worth of text through vmir.ParseLine and
// accumulates the emitted lines; Bootstrap emits the multi-file program
// entry sequence (SP=256 followed by a call to Sys.init).
package asm
