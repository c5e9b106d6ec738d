package ctxutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", RequestIDFromCtx(ctx))
}

func TestRequestIDFromCtx_Absent(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RequestIDFromCtx(context.Background()))
}

func TestRequestIDFromCtx_ForeignKeyIgnored(t *testing.T) {
	t.Parallel()

	type otherKey string
	ctx := context.WithValue(context.Background(), otherKey("request_id"), "nope")
	assert.Empty(t, RequestIDFromCtx(ctx))
}

func TestLogAttrs(t *testing.T) {
	t.Parallel()

	assert.Empty(t, LogAttrs(context.Background()))

	attrs := LogAttrs(WithRequestID(context.Background(), "abc"))
	require.Len(t, attrs, 1)
	assert.Equal(t, "request_id", attrs[0].Key)
	assert.Equal(t, "abc", attrs[0].Value.String())
}
