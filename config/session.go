package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const sessionFile = "session.json"

// Session remembers the editor's formula and locked swatches between runs.
type Session struct {
	mu    sync.RWMutex
	state sessionState
	dir   string // directory holding session.json
}

type sessionState struct {
	Formula string         `json:"formula,omitempty"`
	Locked  map[int]string `json:"locked,omitempty"` // slot -> hex
}

// NewSession creates an empty session that persists to dir.
func NewSession(dir string) *Session {
	return &Session{
		state: sessionState{Locked: make(map[int]string)},
		dir:   dir,
	}
}

// Load reads the session from disk. Missing file is not an error.
func (s *Session) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, sessionFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read session: %w", err)
	}
	var st sessionState
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("parse session: %w", err)
	}
	if st.Locked == nil {
		st.Locked = make(map[int]string)
	}
	s.state = st
	return nil
}

// Save writes the session to disk, creating the directory if needed.
func (s *Session) Save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.state, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, sessionFile), data, 0644)
}

func (s *Session) Formula() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Formula
}

func (s *Session) SetFormula(f string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Formula = f
}

// Locked returns a copy of the slot -> hex map.
func (s *Session) Locked() map[int]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int]string, len(s.state.Locked))
	for k, v := range s.state.Locked {
		out[k] = v
	}
	return out
}

// SetLocked records slot as locked to hex; an empty hex forgets the slot.
func (s *Session) SetLocked(slot int, hex string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if hex == "" {
		delete(s.state.Locked, slot)
		return
	}
	s.state.Locked[slot] = hex
}
