package config_test

import (
	"testing"
	"time"

	"github.com/SCR01/chaintrace/internal/config"
	"github.com/SCR01/chaintrace/internal/utils/testapp"
	"github.com/SCR01/chaintrace/internal/utils/testutil"
)

func TestConfig(t *testing.T) {
	testapp.TestAllConfigs(t, func(t *testing.T, cfg *config.Config) {
		require := testutil.Require(t)

		require.Equal("chaintrace", cfg.ConfigName)
		require.NotEmpty(cfg.Server.BindAddress)
		require.Equal("Transaction Trace Agent", cfg.Server.ServiceName)
		require.Equal("/api", cfg.Server.RoutePrefix)
		require.Equal(10*time.Second, cfg.Server.ReadHeaderTimeout)
		require.Equal(10*time.Second, cfg.Server.ShutdownTimeout)
		require.Equal(int64(1<<20), cfg.Server.MaxRequestSize)

		require.Equal("Ethereum", cfg.Agent.Chain)
		require.Equal(500*time.Millisecond, cfg.Agent.Delays.BlockchainData)
		require.Equal(time.Second, cfg.Agent.Delays.PathReconstruction)
		require.Equal(800*time.Millisecond, cfg.Agent.Delays.ObfuscationDetection)
		require.Equal(600*time.Millisecond, cfg.Agent.Delays.RiskAssessment)

		require.Equal(70, cfg.Compliance.InvestigationThreshold)
		require.Equal(40, cfg.Compliance.MonitorThreshold)
		require.Equal(2, cfg.Compliance.MultiChainThreshold)

		require.NotEmpty(cfg.Tracer.AgentAddress)

		tags := cfg.GetCommonTags()
		require.Equal(string(cfg.Env()), tags["env"])
		require.Equal("chaintrace", tags["config_name"])
	})
}

func TestConfig_EnvSpecific(t *testing.T) {
	require := testutil.Require(t)

	local, err := config.New(config.WithEnvironment(config.EnvLocal))
	require.NoError(err)
	require.Equal("localhost:5000", local.Server.BindAddress)
	require.False(local.Tracer.Enabled)

	production, err := config.New(config.WithEnvironment(config.EnvProduction))
	require.NoError(err)
	require.Equal(":8080", production.Server.BindAddress)
	if !production.IsTest() {
		require.True(production.Tracer.Enabled)
	}
}

func TestConfig_DefaultEnvironment(t *testing.T) {
	require := testutil.Require(t)

	t.Setenv(config.EnvVarEnvironment, "")
	cfg, err := config.New()
	require.NoError(err)
	require.Equal(config.EnvLocal, cfg.Env())
}

func TestConfig_InvalidEnvironment(t *testing.T) {
	require := testutil.Require(t)

	_, err := config.New(config.WithEnvironment("staging"))
	require.Error(err)
}

func TestConfigOverridingByEnvSettings(t *testing.T) {
	require := testutil.Require(t)

	t.Setenv("CHAINTRACE_SERVER_BIND_ADDRESS", "0.0.0.0:9000")
	t.Setenv("CHAINTRACE_AGENT_SEED", "12345")
	t.Setenv("CHAINTRACE_AGENT_DELAYS_PATH_RECONSTRUCTION", "2s")
	t.Setenv("CHAINTRACE_COMPLIANCE_MONITOR_THRESHOLD", "50")

	cfg, err := config.New(config.WithEnvironment(config.EnvLocal))
	require.NoError(err)
	require.Equal("0.0.0.0:9000", cfg.Server.BindAddress)
	require.Equal(int64(12345), cfg.Agent.Seed)
	require.Equal(2*time.Second, cfg.Agent.Delays.PathReconstruction)
	require.Equal(50, cfg.Compliance.MonitorThreshold)
}

func TestConfig_InvalidThresholds(t *testing.T) {
	require := testutil.Require(t)

	t.Setenv("CHAINTRACE_COMPLIANCE_MONITOR_THRESHOLD", "80")
	_, err := config.New(config.WithEnvironment(config.EnvLocal))
	require.Error(err)
}

func TestConfig_TracerDisabledInTests(t *testing.T) {
	require := testutil.Require(t)

	t.Setenv(config.EnvVarTestType, "unit")
	cfg, err := config.New(config.WithEnvironment(config.EnvProduction))
	require.NoError(err)
	require.True(cfg.IsTest())
	require.False(cfg.Tracer.Enabled)
}
