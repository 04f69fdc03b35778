package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/arcanaland/carddeck/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(ConfigEnv, "")
	return dir
}

func intPtr(v int) *int { return &v }

func TestLoadConfigCreatesDefault(t *testing.T) {
	dir := setupConfigHome(t)

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "standard", config.DefaultPreset)
	assert.FileExists(t, filepath.Join(dir, "carddeck", "config.toml"))

	reloaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.PresetNames(), reloaded.PresetNames())
	assert.Equal(t, 2, *reloaded.Presets["jokers"].Jokers)
	assert.Equal(t, "six", reloaded.Presets["durak"].StartingRank)
}

func TestConfigPathOverride(t *testing.T) {
	setupConfigHome(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	t.Setenv(ConfigEnv, path)

	assert.Equal(t, path, GetConfigFilePath())
	_, err := LoadConfig()
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestLoadEnv(t *testing.T) {
	setupConfigHome(t)
	path := filepath.Join(t.TempDir(), "from-env.toml")

	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(ConfigEnv+"="+path+"\n"), 0644))
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// t.Setenv set the variable to "", so godotenv leaves it alone
	require.NoError(t, os.Unsetenv(ConfigEnv))
	t.Cleanup(func() { _ = os.Unsetenv(ConfigEnv) })

	require.NoError(t, LoadEnv())
	assert.Equal(t, path, GetConfigFilePath())
}

func TestLoadEnvWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	assert.NoError(t, LoadEnv())
}

func TestPresets(t *testing.T) {
	setupConfigHome(t)

	preset, err := GetPreset("")
	require.NoError(t, err)
	assert.Nil(t, preset.Jokers)

	_, err = GetPreset("bridge")
	assert.Error(t, err)

	require.NoError(t, SetDefaultPreset("durak"))
	name, err := GetDefaultPreset()
	require.NoError(t, err)
	assert.Equal(t, "durak", name)

	preset, err = GetPreset("")
	require.NoError(t, err)
	assert.Equal(t, "six", preset.StartingRank)

	assert.Error(t, SetDefaultPreset("bridge"))
}

func TestPresetNewDeck(t *testing.T) {
	seed := uint64(7)
	tests := []struct {
		name     string
		preset   Preset
		wantSize int
	}{
		{"standard", Preset{}, 52},
		{"jokers", Preset{Jokers: intPtr(2)}, 54},
		{"piquet", Preset{StartingRank: "seven"}, 32},
		{"durak with jokers", Preset{StartingRank: "6", Jokers: intPtr(1)}, 37},
		{"suits", Preset{Suits: []string{"hearts", "♤"}}, 26},
		{"suits and ranks", Preset{Suits: []string{"hearts"}, Ranks: []string{"ace", "K"}}, 2},
		{"starting rank replaces suits", Preset{Suits: []string{"hearts"}, StartingRank: "ace"}, 4},
		{"double", Preset{Decks: 1, Shuffle: true}, 104},
		{"shoe", Preset{Decks: MaxExtraDecks}, 416},
		{"triple piquet", Preset{StartingRank: "seven", Decks: 2, Jokers: intPtr(1)}, 99},
		{"seeded", Preset{Shuffle: true, Seed: &seed}, 52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.preset.NewDeck(nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, d.Size())
		})
	}
}

func TestPresetSeedIsReproducible(t *testing.T) {
	seed := uint64(42)
	p := Preset{Shuffle: true, Seed: &seed}

	d1, err := p.NewDeck(nil)
	require.NoError(t, err)
	d2, err := p.NewDeck(nil)
	require.NoError(t, err)

	assert.True(t, slices.EqualFunc(slices.Collect(d1.Cards()), slices.Collect(d2.Cards()), (*card.Card).Equal))
}

func TestPresetErrors(t *testing.T) {
	tests := []struct {
		name   string
		preset Preset
	}{
		{"unknown suit", Preset{Suits: []string{"wands"}}},
		{"joker suit", Preset{Suits: []string{"joker"}}},
		{"unknown rank", Preset{Ranks: []string{"knight"}}},
		{"joker rank", Preset{Ranks: []string{"joker"}}},
		{"unknown starting rank", Preset{StartingRank: "page"}},
		{"too many jokers", Preset{Jokers: intPtr(5)}},
		{"negative decks", Preset{Decks: -1}},
		{"too many decks", Preset{Decks: 100000000}},
		{"merging an empty deck", Preset{Ranks: []string{"ace"}, Suits: []string{"hearts"}, StartingRank: "joker", Decks: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.preset.NewDeck(nil)
			assert.ErrorIs(t, err, card.ErrInvalidArgument)
		})
	}
}
