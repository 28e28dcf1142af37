package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testToken     = "MTIzNDU2.abcdef.ghijkl"
	testChannelID = "123456789012345678"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DISCORD_TOKEN", testToken)
	t.Setenv("DISCORD_CHANNEL_ID", testChannelID)
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, testToken, cfg.DiscordToken)
	assert.Equal(t, testChannelID, cfg.DiscordChannelID)
	assert.Equal(t, 240*time.Minute, cfg.UpdateInterval)
	assert.Contains(t, cfg.NWSUserAgent, "UOC-WeatherBot")
	assert.Equal(t, "UT", cfg.NWSArea)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 25*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 150*time.Millisecond, cfg.FetchPacing)
	assert.Equal(t, 1900, cfg.MaxChunkLen)
	assert.False(t, cfg.RunOnce)
	assert.False(t, cfg.KafkaMirrorEnabled)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "weather-bulletins", cfg.KafkaMirrorTopic)
}

func TestLoad_CustomEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("UPDATE_INTERVAL_MIN", "60")
	t.Setenv("NWS_USER_AGENT", "WeatherNet (ops@example.org)")
	t.Setenv("NWS_AREA", "CO")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("REQUEST_TIMEOUT", "10s")
	t.Setenv("FETCH_PACING", "250ms")
	t.Setenv("MAX_CHUNK_LEN", "1500")
	t.Setenv("RUN_ONCE", "true")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_MIRROR_TOPIC", "bulletins")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.UpdateInterval)
	assert.Equal(t, "WeatherNet (ops@example.org)", cfg.NWSUserAgent)
	assert.Equal(t, "CO", cfg.NWSArea)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.FetchPacing)
	assert.Equal(t, 1500, cfg.MaxChunkLen)
	assert.True(t, cfg.RunOnce)
	assert.True(t, cfg.KafkaMirrorEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "bulletins", cfg.KafkaMirrorTopic)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DISCORD_CHANNEL_ID", testChannelID)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_TOKEN")
}

func TestLoad_MalformedToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "not-a-bot-token")
	t.Setenv("DISCORD_CHANNEL_ID", testChannelID)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_TOKEN")
}

func TestLoad_MissingChannelID(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", testToken)
	t.Setenv("DISCORD_CHANNEL_ID", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_CHANNEL_ID")
}

func TestLoad_NonNumericChannelID(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", testToken)
	t.Setenv("DISCORD_CHANNEL_ID", "utah-weather")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "numeric")
}

func TestLoad_InvalidInterval(t *testing.T) {
	setRequired(t)
	t.Setenv("UPDATE_INTERVAL_MIN", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UPDATE_INTERVAL_MIN")
}

func TestLoad_InvalidPacing(t *testing.T) {
	setRequired(t)
	t.Setenv("FETCH_PACING", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FETCH_PACING")
}

func TestLoad_ChunkLenOverDiscordLimit(t *testing.T) {
	setRequired(t)
	t.Setenv("MAX_CHUNK_LEN", "2500")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_CHUNK_LEN")
}

func TestLoad_MirrorEnabledWithoutBrokers(t *testing.T) {
	setRequired(t)
	t.Setenv("KAFKA_MIRROR_ENABLED", "true")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_BROKERS")
}

func TestLoad_BrokersImplyMirrorEnabled(t *testing.T) {
	setRequired(t)
	t.Setenv("KAFKA_BROKERS", "localhost:9092")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.KafkaMirrorEnabled)
}

func TestLoad_MirrorExplicitlyDisabled(t *testing.T) {
	setRequired(t)
	t.Setenv("KAFKA_BROKERS", "localhost:9092")
	t.Setenv("KAFKA_MIRROR_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.KafkaMirrorEnabled)
}
