package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSpecsCarryDefaultTuning(t *testing.T) {
	player, err := LoadPlayerSpec()
	require.NoError(t, err)
	assert.Equal(t, 8.0, player.MoveSpeed)
	assert.Equal(t, 16.0, player.JumpSpeed)
	assert.Equal(t, 0.35, player.AttackLock)
	assert.Equal(t, 3, player.Lives)
	assert.Equal(t, 0.75, player.Invincibility)
	assert.Equal(t, 0.2, player.GroundSensor.Radius)
	assert.Equal(t, AttackSpec{OffsetX: 0.6, Radius: 0.6, Damage: 10, Cooldown: 0.3}, player.Attack)

	enemy, err := LoadEnemySpec()
	require.NoError(t, err)
	assert.Equal(t, 3.0, enemy.MoveSpeed)
	assert.Equal(t, 0.8, enemy.StopDistance)
	assert.Equal(t, 0.9, enemy.AttackRange)
	assert.Equal(t, 30, enemy.Health)
	assert.Equal(t, 0.8, enemy.DestroyDelay)
	require.NotNil(t, enemy.Head)

	spawner, err := LoadSpawnerSpec()
	require.NoError(t, err)
	assert.Equal(t, SpawnerSpec{
		Interval:      2,
		PerWave:       3,
		XSpread:       2.5,
		YOffset:       -0.2,
		YJitter:       0.15,
		MinSeparation: 0.5,
		MaxAttempts:   8,
		Push:          0.5,
		Script:        "waves.tengo",
	}, *spawner)
}

func TestLevelSpec(t *testing.T) {
	level, err := LoadSpec[LevelSpec]("prefabs/level.yaml")
	require.NoError(t, err)
	assert.NotEmpty(t, level.Ground)
	assert.NotEmpty(t, level.Spawners)
	assert.Equal(t, color.NRGBA{R: 0x8d, G: 0x6e, B: 0x63, A: 0xff}, level.GroundColor.Or(nil))
}

func TestUnknownPrefab(t *testing.T) {
	_, err := LoadSpec[PlayerSpec]("nope.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPrefab))

	_, err = LoadScript("missing.tengo")
	assert.True(t, errors.Is(err, ErrUnknownPrefab))
}

func TestLoadScriptPaths(t *testing.T) {
	for _, name := range []string{"waves.tengo", "scripts/waves.tengo", "prefabs/scripts/waves.tengo"} {
		data, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "count")
	}
}

func TestDiskOverridesEmbedded(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll("prefabs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("prefabs", "coin.yaml"), []byte("kind: coin\nvalue: 5\n"), 0o644))

	coin, err := LoadSpec[PickupSpec]("coin.yaml")
	require.NoError(t, err)
	assert.Equal(t, 5, coin.Value)

	heart, err := LoadSpec[PickupSpec]("heart.yaml")
	require.NoError(t, err)
	assert.Equal(t, "heart", heart.Kind)
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want color.Color
		err  bool
	}{
		{"rgb", `c: "#102030"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, false},
		{"rgba", `c: "10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"short", `c: "#123"`, nil, true},
		{"not_hex", `c: "#zz2030"`, nil, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			require.NoError(t, os.MkdirAll("prefabs", 0o755))
			require.NoError(t, os.WriteFile(filepath.Join("prefabs", "c.yaml"), []byte(c.src), 0o644))

			got, err := LoadSpec[struct {
				C *YAMLColor `yaml:"c"`
			}]("c.yaml")
			if c.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got.C.Color)
		})
	}
}

func TestWatcherReportsRelativeNames(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "enemy.yaml"), []byte("health: 5\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, "enemy.yaml", name)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload event")
	}
}
