package gamedata

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty is a named board preset loaded from JSON.
type Difficulty struct {
	ID    string `json:"id"`   // Unique identifier (e.g., "expert")
	Name  string `json:"name"` // Display name
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Mines int    `json:"mines"`
}

// Validate checks that the preset describes a playable board.
func (d Difficulty) Validate() error {
	if d.ID == "" {
		return errors.New("difficulty id is required")
	}
	if d.Rows <= 0 || d.Cols <= 0 {
		return fmt.Errorf("difficulty %s: rows and cols must be positive", d.ID)
	}
	if d.Mines < 0 || d.Mines >= d.Rows*d.Cols {
		return fmt.Errorf("difficulty %s: mines must be below cell count", d.ID)
	}
	return nil
}

// DifficultiesFile represents the structure of difficulties.json.
type DifficultiesFile struct {
	Default      string       `json:"default"`
	Difficulties []Difficulty `json:"difficulties"`
}

// DifficultyRegistry holds the available presets.
type DifficultyRegistry struct {
	byID      map[string]*Difficulty
	all       []Difficulty
	defaultID string
}

// NewDifficultyRegistry creates a registry from loaded presets.
// defaultID falls back to the first preset when unknown.
func NewDifficultyRegistry(difficulties []Difficulty, defaultID string) *DifficultyRegistry {
	r := &DifficultyRegistry{
		byID:      make(map[string]*Difficulty),
		all:       difficulties,
		defaultID: defaultID,
	}
	for i := range difficulties {
		r.byID[difficulties[i].ID] = &difficulties[i]
	}
	if _, ok := r.byID[defaultID]; !ok && len(difficulties) > 0 {
		r.defaultID = difficulties[0].ID
	}
	return r
}

// LoadDifficultyRegistry loads and validates the embedded difficulties.json.
func LoadDifficultyRegistry() (*DifficultyRegistry, error) {
	file, err := Load[DifficultiesFile]("difficulties.json")
	if err != nil {
		return nil, err
	}
	if len(file.Difficulties) == 0 {
		return nil, errors.New("no difficulties loaded from difficulties.json")
	}
	for _, d := range file.Difficulties {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}
	return NewDifficultyRegistry(file.Difficulties, file.Default), nil
}

// MustLoadDifficultyRegistry loads the registry, panicking on error.
// Use this for data that must be present for the game to function.
func MustLoadDifficultyRegistry() *DifficultyRegistry {
	registry, err := LoadDifficultyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the preset with the given id (case-insensitive).
func (r *DifficultyRegistry) Get(id string) (Difficulty, bool) {
	d, ok := r.byID[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Difficulty{}, false
	}
	return *d, true
}

// Default returns the preset used when none is requested.
func (r *DifficultyRegistry) Default() Difficulty {
	d, _ := r.Get(r.defaultID)
	return d
}

// All returns all presets in file order.
func (r *DifficultyRegistry) All() []Difficulty {
	return r.all
}

// Count returns the number of presets.
func (r *DifficultyRegistry) Count() int {
	return len(r.all)
}
