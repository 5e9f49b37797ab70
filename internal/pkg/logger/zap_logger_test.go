package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerFields(t *testing.T) {
	core, recorded := observer.New(zap.DebugLevel)
	log := NewWithCore(core)

	log.Info("CATALOG", "Product page loaded", map[string]interface{}{"count": 6})
	log.Error("CATALOG", "Failed to list products", map[string]interface{}{"error": "boom"})
	log.Debug("CATALOG", "No details", nil)

	entries := recorded.All()
	require.Len(t, entries, 3)

	info := entries[0].ContextMap()
	assert.Equal(t, "CATALOG", info["module"])
	assert.Equal(t, map[string]interface{}{"count": 6}, info["details"])

	errEntry := entries[1].ContextMap()
	assert.Equal(t, "boom", errEntry["error_ref"])

	assert.Equal(t, map[string]interface{}{}, entries[2].ContextMap()["details"])
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger()
	log.Warn("CATALOG", "ignored", nil)
	assert.NoError(t, log.Sync())
}
