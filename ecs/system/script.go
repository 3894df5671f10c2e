package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/slimeboss/ecs"
	"github.com/milk9111/slimeboss/ecs/component"
	"github.com/milk9111/slimeboss/prefabs"
)

// DefaultBannerSeconds is used when a script result names no duration.
const DefaultBannerSeconds = 3.0

const encounterDispatchScript = `
__result = on_event(__event, __data, __state)
`

// EncounterScriptSystem feeds the frame's encounter events to a tengo
// script. The script defines on_event(name, data, state) and may return a
// map with "banner" (HUD text), "seconds" (banner duration) and "phase" (a
// boss phase request by name). state persists between calls.
type EncounterScriptSystem struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
}

// NewEncounterScriptSystem loads and compiles a script from prefabs.
func NewEncounterScriptSystem(name string) (*EncounterScriptSystem, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return NewEncounterScriptSystemFromSource(name, src)
}

func NewEncounterScriptSystemFromSource(name string, src []byte) (*EncounterScriptSystem, error) {
	s := &EncounterScriptSystem{name: name, state: &tengo.Map{Value: map[string]tengo.Object{}}}
	if err := s.Reload(src); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload recompiles the script. On error the previous script stays active.
// Script state survives a reload.
func (s *EncounterScriptSystem) Reload(src []byte) error {
	script := tengo.NewScript([]byte(string(src) + "\n" + encounterDispatchScript))
	_ = script.Add("__event", "")
	_ = script.Add("__data", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__result", nil)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("script: compile %s: %w", s.name, err)
	}
	s.compiled = compiled
	return nil
}

func (s *EncounterScriptSystem) Update(w *ecs.World) {
	if s == nil || s.compiled == nil || w == nil {
		return
	}

	// Results may push more events; only this frame's snapshot is handled.
	events := append([]ecs.Event(nil), w.Events().Items()...)
	for _, ev := range events {
		data, ok := scriptEventData(ev)
		if !ok {
			continue
		}
		result, err := s.dispatch(ev.Type, data)
		if err != nil {
			fmt.Printf("script: %s on_event(%s) error: %v\n", s.name, ev.Type, err)
			continue
		}
		s.apply(w, ev, result)
	}
}

func (s *EncounterScriptSystem) dispatch(event string, data map[string]any) (map[string]any, error) {
	if err := s.compiled.Set("__event", event); err != nil {
		return nil, err
	}
	if err := s.compiled.Set("__data", data); err != nil {
		return nil, err
	}
	if err := s.compiled.Set("__state", s.state); err != nil {
		return nil, err
	}
	if err := s.compiled.Run(); err != nil {
		return nil, err
	}
	return s.compiled.Get("__result").Map(), nil
}

func (s *EncounterScriptSystem) apply(w *ecs.World, ev ecs.Event, result map[string]any) {
	if len(result) == 0 {
		return
	}

	if text, ok := result["banner"].(string); ok && strings.TrimSpace(text) != "" {
		seconds := DefaultBannerSeconds
		switch v := result["seconds"].(type) {
		case int64:
			seconds = float64(v)
		case float64:
			seconds = v
		}
		ShowBanner(w, text, seconds)
	}

	if phase, ok := result["phase"].(string); ok && phase != "" {
		ecs.ForEach(w, component.BossComponent.Kind(), func(e ecs.Entity, b *component.Boss) {
			if b.Agent == nil {
				return
			}
			if err := b.Agent.RequestPhase(phase); err != nil {
				fmt.Printf("script: %s phase request %q after %s: %v\n", s.name, phase, ev.Type, err)
			}
		})
	}
}

// State returns the script's persistent state as Go values.
func (s *EncounterScriptSystem) State() map[string]any {
	if s == nil || s.state == nil {
		return nil
	}
	out := make(map[string]any, len(s.state.Value))
	for k, v := range s.state.Value {
		out[k] = tengo.ToInterface(v)
	}
	return out
}

// scriptEventData flattens an event payload into values tengo understands.
func scriptEventData(ev ecs.Event) (map[string]any, bool) {
	switch ev.Type {
	case ecs.EventBossPhase:
		change, ok := ev.Data.(ecs.PhaseChange)
		if !ok {
			return nil, false
		}
		return map[string]any{"from": change.From, "to": change.To}, true
	case ecs.EventBossLanded:
		jump, _ := ev.Data.(int)
		return map[string]any{"jump": jump}, true
	case ecs.EventBossDamaged, ecs.EventPlayerHit:
		amount, _ := ev.Data.(int)
		return map[string]any{"amount": amount}, true
	case ecs.EventBossSpotted, ecs.EventBossEscaped, ecs.EventBossDefeated, ecs.EventPlayerDied:
		return map[string]any{}, true
	}
	return nil, false
}
