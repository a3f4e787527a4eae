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

// Package vmir defines the intermediate representation of the Nand2Tetris
// stack machine (the "VM") consumed by package asm: a tagged Command type
// and a line-oriented parser that turns one already-read source line into
// either a Command or a Blank marker.
//
// Package vmir never reads files or iterates a source: it is handed text
// a line at a time by a caller (package asm's translator, or a test) which
// owns the actual io.Reader/bufio.Scanner.
package vmir
