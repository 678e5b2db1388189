package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContextAddsRequestAndUserFields(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)

	ctx := WithUserID(WithRequestID(context.Background(), "req-1"), "user-9")
	CtxInfo(ctx, "searching jobs", "limit", 20)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "searching jobs", entry["msg"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "user-9", entry["user_id"])
	assert.EqualValues(t, 20, entry["limit"])
}

func TestTestEnvSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("test", &buf)

	Info("not shown")
	assert.Empty(t, buf.String())

	Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
