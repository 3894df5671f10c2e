package system

import (
	"fmt"

	"github.com/milk9111/slimeboss/boss"
	"github.com/milk9111/slimeboss/ecs"
	"github.com/milk9111/slimeboss/prefabs"
)

// Encounter is a ready-to-run arena: world, systems and the two actors.
type Encounter struct {
	World     *ecs.World
	Scheduler *ecs.Scheduler
	Script    *EncounterScriptSystem
	Arena     *prefabs.ArenaSpec

	Player ecs.Entity
	Boss   ecs.Entity
	Agent  *boss.Agent
}

// EncounterOptions overrides pieces of NewEncounter. Nil fields load from
// prefabs.
type EncounterOptions struct {
	Boss   *prefabs.BossSpec
	Player *prefabs.PlayerSpec
	Arena  *prefabs.ArenaSpec
	Audio  boss.Audio
	// Physics selects the Chipmunk floor instead of direct integration.
	Physics bool
}

// NewEncounter builds the arena with systems in frame order: input-driven
// player, bosses, physics, health, effects, TTL, script, banner.
func NewEncounter(dt float64, opts EncounterOptions) (*Encounter, error) {
	var err error
	if opts.Boss == nil {
		if opts.Boss, err = prefabs.LoadBossSpec(); err != nil {
			return nil, err
		}
	}
	if opts.Player == nil {
		if opts.Player, err = prefabs.LoadPlayerSpec(); err != nil {
			return nil, err
		}
	}
	if opts.Arena == nil {
		if opts.Arena, err = prefabs.LoadArenaSpec(); err != nil {
			return nil, err
		}
	}

	w := ecs.NewWorld()
	if opts.Physics {
		w.SetPhysicsWorld(ecs.NewPhysicsWorld(opts.Arena.Width, opts.Arena.Depth))
	}

	player, err := SpawnPlayer(w, PlayerSpawnFromSpec(opts.Player))
	if err != nil {
		return nil, err
	}
	bossCfg, err := BossSpawnFromSpec(opts.Boss)
	if err != nil {
		return nil, err
	}
	bossCfg.Audio = opts.Audio
	bossEnt, agent, err := SpawnBoss(w, bossCfg)
	if err != nil {
		return nil, err
	}

	enc := &Encounter{
		World:  w,
		Arena:  opts.Arena,
		Player: player,
		Boss:   bossEnt,
		Agent:  agent,
	}

	enc.Scheduler = ecs.NewScheduler(
		NewPlayerSystem(dt),
		NewBossSystem(dt),
		NewPhysicsSystem(dt),
		NewHealthSystem(dt),
		NewEffectsSystem(dt),
		NewTTLSystem(dt),
	)
	if opts.Arena.Script != "" {
		script, err := NewEncounterScriptSystem(opts.Arena.Script)
		if err != nil {
			fmt.Printf("script: %v\n", err)
		} else {
			enc.Script = script
			enc.Scheduler.Add(script)
		}
	}
	enc.Scheduler.Add(NewBannerSystem(dt))
	return enc, nil
}

// Update runs one fixed step.
func (enc *Encounter) Update() {
	enc.Scheduler.Update(enc.World)
}

// ReloadBoss applies an edited boss prefab to the running agent.
func (enc *Encounter) ReloadBoss() error {
	spec, err := prefabs.LoadBossSpec()
	if err != nil {
		return err
	}
	stats, err := spec.Stats.ToStats()
	if err != nil {
		return err
	}
	return enc.Agent.SetStats(stats)
}

// ReloadScript recompiles the encounter script after an edit.
func (enc *Encounter) ReloadScript() error {
	if enc.Script == nil || enc.Arena == nil {
		return nil
	}
	src, err := prefabs.LoadScript(enc.Arena.Script)
	if err != nil {
		return err
	}
	return enc.Script.Reload(src)
}

// HandleChange routes a watcher change to the matching reload.
func (enc *Encounter) HandleChange(ch prefabs.Change) error {
	switch ch.Kind {
	case prefabs.ChangeSpec:
		if ch.Name != prefabs.BossSpecFile {
			return nil
		}
		return enc.ReloadBoss()
	case prefabs.ChangeScript:
		return enc.ReloadScript()
	}
	return nil
}
