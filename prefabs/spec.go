package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Durations are written in seconds.

type PlayerSpec struct {
	Name                 string           `yaml:"name"`
	MoveSpeed            float64          `yaml:"move_speed"`
	JumpSpeed            float64          `yaml:"jump_speed"`
	JumpCut              float64          `yaml:"jump_cut"`
	MaxSlopeDeg          float64          `yaml:"max_slope_deg"`
	AttackLock           float64          `yaml:"attack_lock"`
	AttackMoveMultiplier float64          `yaml:"attack_move_multiplier"`
	Lives                int              `yaml:"lives"`
	Invincibility        float64          `yaml:"invincibility"`
	PickupRange          float64          `yaml:"pickup_range"`
	Collider             ColliderSpec     `yaml:"collider"`
	GroundSensor         GroundSensorSpec `yaml:"ground_sensor"`
	Attack               AttackSpec       `yaml:"attack"`
	Color                *YAMLColor       `yaml:"color"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnemySpec struct {
	Name                 string           `yaml:"name"`
	MoveSpeed            float64          `yaml:"move_speed"`
	StopDistance         float64          `yaml:"stop_distance"`
	AttackRange          float64          `yaml:"attack_range"`
	AttackLock           float64          `yaml:"attack_lock"`
	AttackMoveMultiplier float64          `yaml:"attack_move_multiplier"`
	SpawnDelay           float64          `yaml:"spawn_delay"`
	FallingThreshold     float64          `yaml:"falling_threshold"`
	Health               int              `yaml:"health"`
	DestroyDelay         float64          `yaml:"destroy_delay"`
	Collider             ColliderSpec     `yaml:"collider"`
	Head                 *CircleSpec      `yaml:"head"`
	GroundSensor         GroundSensorSpec `yaml:"ground_sensor"`
	Attack               AttackSpec       `yaml:"attack"`
	Color                *YAMLColor       `yaml:"color"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type SpawnerSpec struct {
	Interval      float64 `yaml:"interval"`
	PerWave       int     `yaml:"per_wave"`
	XSpread       float64 `yaml:"x_spread"`
	YOffset       float64 `yaml:"y_offset"`
	YJitter       float64 `yaml:"y_jitter"`
	MinSeparation float64 `yaml:"min_separation"`
	MaxAttempts   int     `yaml:"max_attempts"`
	Push          float64 `yaml:"push"`
	MaxAlive      int     `yaml:"max_alive"`
	Script        string  `yaml:"script"`
}

func LoadSpawnerSpec() (*SpawnerSpec, error) {
	spec, err := LoadSpec[SpawnerSpec]("spawner.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PickupSpec struct {
	Kind   string     `yaml:"kind"`
	Value  int        `yaml:"value"`
	Radius float64    `yaml:"radius"`
	Color  *YAMLColor `yaml:"color"`
}

type LevelSpec struct {
	Name        string        `yaml:"name"`
	PlayerStart PointSpec     `yaml:"player_start"`
	Spawners    []PointSpec   `yaml:"spawners"`
	Ground      []SegmentSpec `yaml:"ground"`
	Coins       []PointSpec   `yaml:"coins"`
	Hearts      []PointSpec   `yaml:"hearts"`
	GroundColor *YAMLColor    `yaml:"ground_color"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type SegmentSpec struct {
	From   PointSpec `yaml:"from"`
	To     PointSpec `yaml:"to"`
	Radius float64   `yaml:"radius"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Mass   float64 `yaml:"mass"`
}

type CircleSpec struct {
	Radius  float64 `yaml:"radius"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type GroundSensorSpec struct {
	OffsetY   float64 `yaml:"offset_y"`
	Radius    float64 `yaml:"radius"`
	RayLength float64 `yaml:"ray_length"`
}

type AttackSpec struct {
	OffsetX  float64 `yaml:"offset_x"`
	OffsetY  float64 `yaml:"offset_y"`
	Radius   float64 `yaml:"radius"`
	Damage   int     `yaml:"damage"`
	Cooldown float64 `yaml:"cooldown"`
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

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		rgba[i] = v
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}

// Or returns the parsed colour, or fallback when none was given.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
