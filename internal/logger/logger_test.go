package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_AddsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { InitWithWriter("production", &bytes.Buffer{}) })

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithUserID(ctx, "user-7")
	ctx = WithSeq(ctx, "42")
	CtxInfo(ctx, "search served", "category", "vehicle")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "search served", entry["msg"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "user-7", entry["user_id"])
	assert.Equal(t, "42", entry["seq"])
	assert.Equal(t, "vehicle", entry["category"])
}

func TestStoreLog_SuccessIsDebugOnly(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { InitWithWriter("production", &bytes.Buffer{}) })

	StoreLog("memory", "get", "listings:vehicle", 0, nil)
	assert.Empty(t, buf.String())

	StoreLog("memory", "set", "listings:vehicle", 0, assert.AnError)
	assert.Contains(t, buf.String(), "store operation failed")
}
