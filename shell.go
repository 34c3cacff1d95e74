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
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/rs/zerolog"
)

var (
	// ErrUnknownCommand is returned for shell input that names no command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage is returned when a command gets the wrong number of arguments.
	ErrUsage = errors.New("wrong arguments")
)

const shellHelp = `Commands:
  insert|add KEY...     insert keys (duplicates are ignored)
  delete|del|rm KEY...  delete keys (absent keys are ignored)
  contains KEY          is KEY in the tree
  seen KEY              was KEY possibly inserted at some point
  min | max | sum       aggregate lookups
  height | len | keys   tree shape and contents
  show                  draw the tree
  check                 verify ordering, heights and balance
  clear                 remove every key
  use NAME              switch to (or create) the tree NAME
  trees                 list trees, * marks the current one
  drop NAME             forget the tree NAME
  help                  this text`

// Interpreter runs shell commands against the sessions of a Workspace.
type Interpreter struct {
	ws      *Workspace
	current string
	log     zerolog.Logger
}

func NewInterpreter(ws *Workspace, log zerolog.Logger) *Interpreter {
	return &Interpreter{ws: ws, current: defaultSessionName, log: log}
}

// Current returns the session commands apply to.
func (in *Interpreter) Current() *Session {
	return in.ws.Session(in.current)
}

// splitLine splits a shell line into words, honouring quotes.
func splitLine(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", line, err)
	}
	return args, nil
}

// Exec runs one line and returns the text to show for it. Inserting a
// duplicate or deleting an absent key is reported in the output, not as an
// error.
func (in *Interpreter) Exec(line string) (string, error) {
	args, err := splitLine(line)
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return "", nil
	}

	cmd, args := strings.ToLower(args[0]), args[1:]
	s := in.Current()

	switch cmd {
	case "insert", "add":
		return in.mutate(cmd, args, s.Insert, "inserted %s", "%s already present")
	case "delete", "del", "rm":
		return in.mutate(cmd, args, s.Delete, "deleted %s", "%s not found")
	case "contains":
		key, err := singleKey(cmd, args)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(s.Tree.Contains(key)), nil
	case "seen":
		key, err := singleKey(cmd, args)
		if err != nil {
			return "", err
		}
		if s.Seen(key) {
			return formatKey(key) + " possibly inserted before", nil
		}
		return formatKey(key) + " never inserted", nil
	case "min", "max":
		lookup := s.Tree.Min
		if cmd == "max" {
			lookup = s.Tree.Max
		}
		key, err := lookup()
		if err != nil {
			return "", fmt.Errorf("%s: %w", cmd, err)
		}
		return fmt.Sprintf("%s: %s", cmd, formatKey(key)), nil
	case "sum":
		return "sum: " + formatKey(s.Tree.Sum()), nil
	case "height":
		return fmt.Sprintf("height: %d", s.Tree.Height()), nil
	case "len":
		return fmt.Sprintf("len: %d", s.Tree.Len()), nil
	case "keys":
		return formatKeys(s.Tree.Keys()), nil
	case "show":
		if s.Tree.Len() == 0 {
			return "(empty)", nil
		}
		return strings.TrimSuffix(s.Tree.String(), "\n"), nil
	case "check":
		if err := s.Tree.Validate(); err != nil {
			in.log.Error().Err(err).Str("tree", s.Name).Msg("invariant check failed")
			return "", err
		}
		return "ok", nil
	case "clear":
		s.Tree.Clear()
		return "cleared " + s.Name, nil
	case "use":
		if len(args) != 1 {
			return "", fmt.Errorf("%s: %w: want a tree name", cmd, ErrUsage)
		}
		in.current = args[0]
		in.ws.Session(in.current)
		return "using " + in.current, nil
	case "trees":
		in.ws.Session(in.current)
		var sb strings.Builder
		for i, name := range in.ws.Names() {
			if i > 0 {
				sb.WriteByte('\n')
			}
			mark := "  "
			if name == in.current {
				mark = "* "
			}
			sb.WriteString(mark + name)
		}
		return sb.String(), nil
	case "drop":
		if len(args) != 1 {
			return "", fmt.Errorf("%s: %w: want a tree name", cmd, ErrUsage)
		}
		if !in.ws.Drop(args[0]) {
			return "no tree " + args[0], nil
		}
		return "dropped " + args[0], nil
	case "help":
		return shellHelp, nil
	}
	return "", fmt.Errorf("%w %q, try help", ErrUnknownCommand, cmd)
}

func (in *Interpreter) mutate(cmd string, args []string, op func(float64) bool, done, noop string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%s: %w: want at least one key", cmd, ErrUsage)
	}
	keys, err := parseKeys(args)
	if err != nil {
		return "", fmt.Errorf("%s: %w", cmd, err)
	}

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		changed := op(k)
		in.log.Debug().Str("tree", in.current).Str("op", cmd).Float64("key", k).Bool("changed", changed).Msg("tree updated")
		if changed {
			lines = append(lines, fmt.Sprintf(done, formatKey(k)))
		} else {
			lines = append(lines, fmt.Sprintf(noop, formatKey(k)))
		}
	}
	return strings.Join(lines, "\n"), nil
}

func singleKey(cmd string, args []string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s: %w: want exactly one key", cmd, ErrUsage)
	}
	key, err := parseKey(args[0])
	if err != nil {
		return 0, fmt.Errorf("%s: %w", cmd, err)
	}
	return key, nil
}
