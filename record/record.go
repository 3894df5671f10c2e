// Package record keeps a history of encounter outcomes in the user's data
// directory.
package record

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	recordObject   = "encounter"
	recordProperty = "slime"

	// HistoryLimit caps the stored outcomes, newest last.
	HistoryLimit = 20
)

type Result string

const (
	ResultVictory Result = "victory"
	ResultDefeat  Result = "defeat"
)

type Outcome struct {
	Result   Result    `yaml:"result"`
	Seconds  float64   `yaml:"seconds"`
	BossHP   int       `yaml:"boss_hp"`
	PlayerHP int       `yaml:"player_hp"`
	Jumps    int       `yaml:"jumps"`
	Stuns    int       `yaml:"stuns"`
	At       time.Time `yaml:"at"`
}

type Summary struct {
	Attempts       int       `yaml:"attempts"`
	Victories      int       `yaml:"victories"`
	Defeats        int       `yaml:"defeats"`
	FastestVictory float64   `yaml:"fastest_victory"`
	History        []Outcome `yaml:"history"`
}

// Store persists a Summary through gdata. A Store without a manager keeps
// everything in memory.
type Store struct {
	m       *gdata.Manager
	summary Summary
}

// Open opens the app's data directory. If that fails the store still works,
// without persistence.
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("record: data directory unavailable, records kept in memory: %v", err)
		m = nil
	}
	return NewStore(m)
}

func NewStore(m *gdata.Manager) *Store {
	s := &Store{m: m}
	if err := s.Load(); err != nil {
		log.Printf("record: %v (starting fresh)", err)
	}
	return s
}

func (s *Store) Load() error {
	s.summary = Summary{}
	if s.m == nil || !s.m.ObjectPropExists(recordObject, recordProperty) {
		return nil
	}
	data, err := s.m.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		return fmt.Errorf("record: load: %w", err)
	}
	var summary Summary
	if err := yaml.Unmarshal(data, &summary); err != nil {
		return fmt.Errorf("record: unmarshal: %w", err)
	}
	s.summary = summary
	return nil
}

func (s *Store) Save() error {
	if s.m == nil {
		return nil
	}
	data, err := yaml.Marshal(&s.summary)
	if err != nil {
		return fmt.Errorf("record: marshal: %w", err)
	}
	if err := s.m.SaveObjectProp(recordObject, recordProperty, data); err != nil {
		return fmt.Errorf("record: save: %w", err)
	}
	return nil
}

// Add folds o into the summary and saves it.
func (s *Store) Add(o Outcome) error {
	sum := &s.summary
	sum.Attempts++
	switch o.Result {
	case ResultVictory:
		sum.Victories++
		if sum.FastestVictory == 0 || o.Seconds < sum.FastestVictory {
			sum.FastestVictory = o.Seconds
		}
	case ResultDefeat:
		sum.Defeats++
	}
	sum.History = append(sum.History, o)
	if over := len(sum.History) - HistoryLimit; over > 0 {
		sum.History = append([]Outcome(nil), sum.History[over:]...)
	}
	return s.Save()
}

func (s *Store) Summary() Summary {
	return s.summary
}

// Persistent reports whether outcomes reach disk.
func (s *Store) Persistent() bool {
	return s.m != nil
}
