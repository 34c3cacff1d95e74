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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

const version = "0.3.0"

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlkit %s**

Build, inspect and stress self-balancing AVL trees from your terminal.

Built with Go %s

# 1. Commands
* **demo**: build the sample tree, print it with max, min and sum, then delete keys
* **build KEY...**: build a tree from arguments or a --file of numbers
* **shell**: interactive shell over named trees (--plain for a line REPL)
* **stress**: random inserts and deletes with invariant checks after every step
* **settings**: show the configuration in ~/.avlkit.yaml

# 2. Tree rules
* Inserting a key that is already present does nothing
* Deleting a key that is not present does nothing
* Min and max of an empty tree report "tree is empty"

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}

// shellHelpMarkdown is the F1 panel of the interactive shell.
func shellHelpMarkdown() string {
	return "# avlkit shell\n\n```\n" + shellHelp + "\n```\n\n" +
		"## Keys\n\n" +
		"* `enter` run the command, or switch to the selected tree\n" +
		"* `tab` move between command input and tree list\n" +
		"* `ctrl+y` copy the current tree to the clipboard\n" +
		"* `f1` toggle this help\n" +
		"* `esc` quit\n"
}
