package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amp-labs/amp-containers/envutil"
	"github.com/amp-labs/amp-containers/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(t.Context(), "")
	require.NoError(t, err)

	assert.Equal(t, sorting.Names(), cfg.Strategies)
	assert.Equal(t, KindInt, cfg.Kind)
	assert.Equal(t, OrderBytes, cfg.Order)
	assert.Equal(t, defaultSize, cfg.Size)
	assert.Positive(t, cfg.Workers)
	assert.Equal(t, 1, cfg.Repeat)
}

func TestLoadConfig_Files(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{
			name: "bench.yaml",
			body: "strategies: [comb, Shell]\nsize: 50\nseed: 9\nkind: text\norder: natural\nrepeat: 2\n",
		},
		{
			name: "bench.toml",
			body: "strategies = [\"comb\", \"Shell\"]\nsize = 50\nseed = 9\nkind = \"text\"\norder = \"natural\"\nrepeat = 2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := LoadConfig(t.Context(), writeConfig(t, tt.name, tt.body))
			require.NoError(t, err)

			assert.Equal(t, []string{"comb", "shell"}, cfg.Strategies)
			assert.Equal(t, 50, cfg.Size)
			assert.Equal(t, uint64(9), cfg.Seed)
			assert.Equal(t, KindText, cfg.Kind)
			assert.Equal(t, OrderNatural, cfg.Order)
			assert.Equal(t, 2, cfg.Repeat)
		})
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "bench.yml", "size: 50\nkind: int\n")

	ctx := envutil.WithEnvOverrides(t.Context(), map[string]string{
		"SORTBENCH_SIZE":       "75",
		"SORTBENCH_STRATEGIES": "heap",
		"SORTBENCH_KIND":       "TEXT",
		"SORTBENCH_WORKERS":    "3",
	})

	cfg, err := LoadConfig(ctx, path)
	require.NoError(t, err)

	assert.Equal(t, 75, cfg.Size)
	assert.Equal(t, []string{"heap"}, cfg.Strategies)
	assert.Equal(t, KindText, cfg.Kind)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(t.Context(), writeConfig(t, "bench.ini", "size=1"))
	require.ErrorIs(t, err, ErrUnknownFileType)

	_, err = LoadConfig(t.Context(), writeConfig(t, "bench.yaml", "size: [1"))
	require.Error(t, err)

	_, err = LoadConfig(t.Context(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	ctx := envutil.WithEnvOverride(t.Context(), "SORTBENCH_SIZE", "lots")
	_, err = LoadConfig(ctx, "")
	require.ErrorIs(t, err, ErrInvalidConfig)

	ctx = envutil.WithEnvOverride(t.Context(), "SORTBENCH_KIND", "float")
	_, err = LoadConfig(ctx, "")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "minimal", cfg: Config{Size: 10}},
		{name: "input only", cfg: Config{Kind: KindText, Input: "words.txt"}},
		{name: "unknown strategy", cfg: Config{Size: 10, Strategies: []string{"bogo"}}, wantErr: true},
		{name: "unknown kind", cfg: Config{Size: 10, Kind: "float"}, wantErr: true},
		{name: "unknown order", cfg: Config{Size: 10, Order: "random"}, wantErr: true},
		{name: "negative size", cfg: Config{Size: -1}, wantErr: true},
		{name: "no size", cfg: Config{}, wantErr: true},
		{name: "input for ints", cfg: Config{Kind: KindInt, Input: "words.txt"}, wantErr: true},
		{name: "too many repeats", cfg: Config{Size: 10, Repeat: maxRepeat + 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, tt.cfg.Strategies)
			assert.Positive(t, tt.cfg.Workers)
		})
	}
}

func TestConfig_TextComparator(t *testing.T) {
	t.Parallel()

	folded := (&Config{Order: OrderBytes}).textComparator()
	assert.Zero(t, folded("Apple", "apple"))

	exact := (&Config{Order: OrderBytes, CaseSensitive: true}).textComparator()
	assert.Negative(t, exact("Apple", "apple"))

	natural := (&Config{Order: OrderNatural}).textComparator()
	assert.Negative(t, natural("file2", "file10"))

	unicode := (&Config{Order: OrderFold}).textComparator()
	assert.Zero(t, unicode("STRASSE", "straße"))
}
