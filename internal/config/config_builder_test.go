package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of a later source
// override earlier ones while zero fields leave them intact.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Adapter: Adapter{HTTPAddress: "env:8080", RequestTimeout: time.Second},
			Login:   Login{TokenKey: "env-key"},
		},
		&StructuredConfig{
			Adapter: Adapter{HTTPAddress: "json:9090"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "json:9090", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "env-key", cfg.Login.TokenKey)
}

func TestBuild_RejectsNegativeLoginTimeout(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Login: Login{Timeout: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidLoginConfigs)
}

// ── withFlagSet / withJSON ────────────────────────────────────────────────────

func TestWithFlagSet_InvalidFlagRecordsError(t *testing.T) {
	b := newConfigBuilder().withFlagSet(newTestFlagSet(), []string{"-unknown"})
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NotSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"login": map[string]any{"token_key": "from-json", "timeout": "5s"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.Login.TokenKey)
	assert.Equal(t, 5*time.Second, cfg.Login.Timeout)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "missing.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// ── client / stub server views ────────────────────────────────────────────────

func validClientStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{HTTPAddress: "localhost:8080"},
		Storage: Storage{DB: DB{DSN: "./login.db"}},
		Login:   Login{TokenKey: "secret"},
	}
}

func TestNewClientConfig_AppliesDefaults(t *testing.T) {
	cfg := newClientConfig(validClientStructuredConfig())

	require.NoError(t, cfg.validate())
	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, defaultIOPoolSize, cfg.Workers.IOPoolSize)
	assert.Equal(t, defaultQueueSize, cfg.Workers.QueueSize)
	assert.Zero(t, cfg.Login.Timeout)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *StructuredConfig) {}},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "memory dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no token key", mutate: func(c *StructuredConfig) { c.Login.TokenKey = "" }, wantErr: ErrInvalidLoginConfigs},
		{name: "negative pool", mutate: func(c *StructuredConfig) { c.Workers.IOPoolSize = -1 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := validClientStructuredConfig()
			tt.mutate(sc)

			err := newClientConfig(sc).validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStubServerConfig_Validate(t *testing.T) {
	valid := &StructuredConfig{StubServer: StubServer{
		TokenSignKey: "sign",
		Accounts:     []string{"alice@example.com:secret1"},
	}}

	cfg := newStubServerConfig(valid)
	require.NoError(t, cfg.validate())
	assert.Equal(t, defaultStubAddress, cfg.Address)
	assert.Equal(t, defaultStubTokenIssuer, cfg.TokenIssuer)
	assert.Equal(t, defaultStubTokenDuration, cfg.TokenDuration)

	noKey := newStubServerConfig(&StructuredConfig{})
	assert.ErrorIs(t, noKey.validate(), ErrInvalidStubServerConfigs)

	badAccount := newStubServerConfig(&StructuredConfig{StubServer: StubServer{
		TokenSignKey: "sign",
		Accounts:     []string{"no-password"},
	}})
	assert.ErrorIs(t, badAccount.validate(), ErrInvalidStubServerConfigs)
}
