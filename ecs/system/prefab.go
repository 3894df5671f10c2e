package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimeboss/ecs/component"
	"github.com/milk9111/slimeboss/prefabs"
)

// BossSpawnFromSpec converts a boss prefab. Audio and Effects are left for
// the caller.
func BossSpawnFromSpec(spec *prefabs.BossSpec) (BossSpawn, error) {
	stats, err := spec.Stats.ToStats()
	if err != nil {
		return BossSpawn{}, err
	}
	return BossSpawn{
		Name:         spec.Name,
		Stats:        stats,
		MaxHP:        spec.Health.Max,
		RecoveryTime: spec.Health.RecoveryTime,
		Position:     mgl64.Vec3{spec.Spawn.X, spec.Spawn.Y, spec.Spawn.Z},
		Radius:       spec.Radius,
	}, nil
}

func PlayerSpawnFromSpec(spec *prefabs.PlayerSpec) PlayerSpawn {
	return PlayerSpawn{
		Player: component.Player{
			MoveSpeed:      spec.MoveSpeed,
			Acceleration:   spec.Acceleration,
			JumpSpeed:      spec.JumpSpeed,
			Gravity:        spec.Gravity,
			Radius:         spec.Radius,
			AttackRange:    spec.AttackRange,
			AttackDamage:   spec.AttackDamage,
			AttackCooldown: spec.AttackCooldown,
		},
		MaxHP:        spec.Health.Max,
		RecoveryTime: spec.Health.RecoveryTime,
		Position:     mgl64.Vec3{spec.Spawn.X, spec.Spawn.Y, spec.Spawn.Z},
	}
}
