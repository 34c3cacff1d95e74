// Copyright 2025 Naren Yellavula
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

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// runREPL feeds lines from in to the interpreter until EOF, "exit" or "quit".
func runREPL(in io.Reader, out io.Writer, interp *Interpreter) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "avl> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			return nil
		}

		res, err := interp.Exec(line)
		if err != nil {
			fmt.Fprintf(out, "%serror:%s %v\n", Error, Reset, err)
		} else if res != "" {
			fmt.Fprintln(out, res)
		}
		fmt.Fprint(out, "avl> ")
	}
	fmt.Fprintln(out)
	return scanner.Err()
}
