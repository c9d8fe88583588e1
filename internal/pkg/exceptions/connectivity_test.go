package exceptions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConnectivityError(t *testing.T) {
	connectivity := []string{
		"dial tcp 127.0.0.1:6379: connection refused",
		"server selection error: context deadline exceeded",
		"read tcp: i/o timeout",
		"Network Error",
	}
	for _, msg := range connectivity {
		assert.True(t, IsConnectivityError(errors.New(msg)), msg)
	}

	assert.False(t, IsConnectivityError(nil))
	assert.False(t, IsConnectivityError(errors.New("duplicate key error")))
}

func TestWrapStoreErrorSplitsOnConnectivity(t *testing.T) {
	unreachable := ErrRedisSet(errors.New("dial tcp: connection refused"))
	assert.Equal(t, 503, unreachable.StatusCode)

	internal := ErrRedisSet(errors.New("wrong value type"))
	assert.Equal(t, 500, internal.StatusCode)
}
