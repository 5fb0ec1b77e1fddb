package ptrutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestToPtr(t *testing.T) {
	require.Equal(t, 42, *ToPtr(42))
	require.Equal(t, time.Second, *ToPtr(time.Second))
}

func TestSetPtrIfNil(t *testing.T) {
	var (
		fallback = ToPtr(time.Minute)
		p        *time.Duration
	)

	SetPtrIfNil(&p, fallback)
	require.Equal(t, fallback, p)

	existing := ToPtr(time.Second)

	SetPtrIfNil(&existing, fallback)
	require.Equal(t, time.Second, *existing)
}
