package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/slimeboss/boss"
	"gopkg.in/yaml.v3"
)

const (
	BossSpecFile   = "slime_boss.yaml"
	PlayerSpecFile = "player.yaml"
	ArenaSpecFile  = "arena.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var spec T
	if err := LoadSpecInto(filename, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// LoadSpecInto decodes filename over spec. Keys missing from the file keep
// the values already in spec.
func LoadSpecInto[T any](filename string, spec *T) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

type PositionSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type HealthSpec struct {
	Max          int     `yaml:"max"`
	RecoveryTime float64 `yaml:"recovery_time"`
}

// BossSpec is the slime boss prefab.
type BossSpec struct {
	Name   string       `yaml:"name"`
	Radius float64      `yaml:"radius"`
	Spawn  PositionSpec `yaml:"spawn"`
	Health HealthSpec   `yaml:"health"`
	Stats  StatsSpec    `yaml:"stats"`
}

// StatsSpec mirrors boss.Stats.
type StatsSpec struct {
	TargetTag string `yaml:"target_tag"`

	SpotRange float64 `yaml:"spot_range"`
	ViewRange float64 `yaml:"view_range"`

	Gravity            float64 `yaml:"gravity"`
	MaxFallSpeed       float64 `yaml:"max_fall_speed"`
	SnapForce          float64 `yaml:"snap_force"`
	FollowAcceleration float64 `yaml:"follow_acceleration"`
	FollowTopSpeed     float64 `yaml:"follow_top_speed"`
	TurningDrag        float64 `yaml:"turning_drag"`
	Deceleration       float64 `yaml:"deceleration"`
	Friction           float64 `yaml:"friction"`
	RotationSpeed      float64 `yaml:"rotation_speed"`
	AttackRange        float64 `yaml:"attack_range"`

	JumpHeight       float64 `yaml:"jump_height"`
	JumpDuration     float64 `yaml:"jump_duration"`
	JumpRotationRate float64 `yaml:"jump_rotation_rate"`
	TimeBeforeJump   float64 `yaml:"time_before_jump"`
	TimeAfterJump    float64 `yaml:"time_after_jump"`
	SettleDuration   float64 `yaml:"settle_duration"`

	StunDuration      float64 `yaml:"stun_duration"`
	StunSoundFraction float64 `yaml:"stun_sound_fraction"`
	StunEffectHeight  float64 `yaml:"stun_effect_height"`
	KnockbackDuration float64 `yaml:"knockback_duration"`
	KnockbackDistance float64 `yaml:"knockback_distance"`
	KnockbackHeight   float64 `yaml:"knockback_height"`

	Height                   float64 `yaml:"height"`
	ContactDamage            int     `yaml:"contact_damage"`
	ContactPushback          bool    `yaml:"contact_pushback"`
	ContactPushbackForce     float64 `yaml:"contact_pushback_force"`
	ContactSteppingTolerance float64 `yaml:"contact_stepping_tolerance"`
}

func statsSpecFrom(s boss.Stats) StatsSpec {
	return StatsSpec(s)
}

// ToStats converts and validates the tuning.
func (s StatsSpec) ToStats() (boss.Stats, error) {
	stats := boss.Stats(s)
	if err := stats.Validate(); err != nil {
		return boss.Stats{}, fmt.Errorf("prefabs: boss stats: %w", err)
	}
	return stats, nil
}

// LoadBossSpec reads the boss prefab. Stats the file leaves out keep
// boss.DefaultStats.
func LoadBossSpec() (*BossSpec, error) {
	spec := BossSpec{
		Name:   "slime",
		Radius: 1.5,
		Health: HealthSpec{Max: 10, RecoveryTime: 0.3},
		Stats:  statsSpecFrom(boss.DefaultStats()),
	}
	if err := LoadSpecInto(BossSpecFile, &spec); err != nil {
		return nil, err
	}
	if _, err := spec.Stats.ToStats(); err != nil {
		return nil, err
	}
	if spec.Health.Max <= 0 {
		return nil, fmt.Errorf("prefabs: %s: health.max must be positive, got %d", BossSpecFile, spec.Health.Max)
	}
	return &spec, nil
}

type PlayerSpec struct {
	Name           string       `yaml:"name"`
	MoveSpeed      float64      `yaml:"move_speed"`
	Acceleration   float64      `yaml:"acceleration"`
	JumpSpeed      float64      `yaml:"jump_speed"`
	Gravity        float64      `yaml:"gravity"`
	Radius         float64      `yaml:"radius"`
	AttackRange    float64      `yaml:"attack_range"`
	AttackDamage   int          `yaml:"attack_damage"`
	AttackCooldown float64      `yaml:"attack_cooldown"`
	Spawn          PositionSpec `yaml:"spawn"`
	Health         HealthSpec   `yaml:"health"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerSpecFile)
	if err != nil {
		return nil, err
	}
	if spec.Health.Max <= 0 || spec.MoveSpeed <= 0 {
		return nil, fmt.Errorf("prefabs: %s: health.max and move_speed must be positive", PlayerSpecFile)
	}
	return &spec, nil
}

type ArenaColors struct {
	Floor   YAMLColor `yaml:"floor"`
	Wall    YAMLColor `yaml:"wall"`
	Boss    YAMLColor `yaml:"boss"`
	Player  YAMLColor `yaml:"player"`
	Effect  YAMLColor `yaml:"effect"`
	Shadow  YAMLColor `yaml:"shadow"`
	HUDText YAMLColor `yaml:"hud_text"`
}

// ArenaSpec describes the floor, the window and the encounter script.
type ArenaSpec struct {
	Width        float64     `yaml:"width"`
	Depth        float64     `yaml:"depth"`
	PixelsPerM   float64     `yaml:"pixels_per_meter"`
	ScreenWidth  int         `yaml:"screen_width"`
	ScreenHeight int         `yaml:"screen_height"`
	Script       string      `yaml:"script"`
	Colors       ArenaColors `yaml:"colors"`
}

func LoadArenaSpec() (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec](ArenaSpecFile)
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Depth <= 0 {
		return nil, fmt.Errorf("prefabs: %s: width and depth must be positive", ArenaSpecFile)
	}
	if spec.PixelsPerM <= 0 {
		spec.PixelsPerM = 16
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns c, or fallback when the file left the color out.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
