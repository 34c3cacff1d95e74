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
	"sort"

	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"

	"github.com/cybrota/avlkit/avl"
)

const defaultSessionName = "main"

// Session is a named tree plus a record of every key ever inserted into it.
type Session struct {
	Name string
	Tree *avl.Tree[float64]

	seen *bloom.BloomFilter
}

func newSession(name string, cfg WorkspaceConfig) *Session {
	return &Session{
		Name: name,
		Tree: avl.New[float64](),
		seen: bloom.New(cfg.BloomSize, cfg.BloomHashes),
	}
}

// Insert adds key to the tree and reports whether the tree changed.
func (s *Session) Insert(key float64) bool {
	s.seen.AddString(formatKey(key))
	return s.Tree.Insert(key)
}

func (s *Session) Delete(key float64) bool {
	return s.Tree.Delete(key)
}

// Seen reports whether key was possibly inserted at some point, including
// keys deleted since. It never returns false for a key that was inserted.
func (s *Session) Seen(key float64) bool {
	return s.seen.TestString(formatKey(key))
}

// Workspace holds named sessions. Sessions not touched for the configured
// expiration are dropped.
type Workspace struct {
	sessions *cache.Cache
	cfg      WorkspaceConfig
}

func NewWorkspace(cfg WorkspaceConfig) *Workspace {
	if cfg.BloomSize == 0 {
		cfg.BloomSize = defaultConfig().Workspace.BloomSize
	}
	if cfg.BloomHashes == 0 {
		cfg.BloomHashes = defaultConfig().Workspace.BloomHashes
	}
	return &Workspace{
		sessions: cache.New(cfg.Expiration, cfg.Cleanup),
		cfg:      cfg,
	}
}

// Session returns the session called name, creating an empty one on first
// use. Every call refreshes the session's expiration.
func (w *Workspace) Session(name string) *Session {
	s, ok := w.Lookup(name)
	if !ok {
		s = newSession(name, w.cfg)
	}
	w.sessions.SetDefault(name, s)
	return s
}

// Lookup returns an existing session without creating or refreshing it.
func (w *Workspace) Lookup(name string) (*Session, bool) {
	val, ok := w.sessions.Get(name)
	if !ok {
		return nil, false
	}
	return val.(*Session), true
}

// Names returns the names of all live sessions in sorted order.
func (w *Workspace) Names() []string {
	items := w.sessions.Items()
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Drop removes a session and reports whether it existed.
func (w *Workspace) Drop(name string) bool {
	if _, ok := w.sessions.Get(name); !ok {
		return false
	}
	w.sessions.Delete(name)
	return true
}
