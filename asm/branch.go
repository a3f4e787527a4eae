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

// mangleLabel scopes a VM label name to the enclosing function, or to the
// file basename for labels declared at the top level, so that the same
// label text used in two different functions never collides.
func (t *Translator) mangleLabel(name string) string {
	return t.caller() + "$" + name
}

func (t *Translator) lowerLabel(name string) []string {
	return []string{"(" + t.mangleLabel(name) + ")"}
}

func (t *Translator) lowerGoto(name string) []string {
	return []string{
		"@" + t.mangleLabel(name),
		"0;JMP",
	}
}

func (t *Translator) lowerIfGoto(name string) []string {
	return []string{
		"@SP",
		"AM=M-1",
		"D=M",
		"@" + t.mangleLabel(name),
		"D;JNE",
	}
}
