package envvar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetInt(t *testing.T) {
	val, ok := GetInt("OSSKIT_TEST_UNSET")
	require.Zero(t, val)
	require.False(t, ok)

	t.Setenv("OSSKIT_TEST_INT", "42")

	val, ok = GetInt("OSSKIT_TEST_INT")
	require.Equal(t, 42, val)
	require.True(t, ok)

	t.Setenv("OSSKIT_TEST_INT", "not-an-int")

	val, ok = GetInt("OSSKIT_TEST_INT")
	require.Zero(t, val)
	require.False(t, ok)
}

func TestGetBool(t *testing.T) {
	val, ok := GetBool("OSSKIT_TEST_UNSET")
	require.False(t, val)
	require.False(t, ok)

	t.Setenv("OSSKIT_TEST_BOOL", "true")

	val, ok = GetBool("OSSKIT_TEST_BOOL")
	require.True(t, val)
	require.True(t, ok)
}

func TestGetDuration(t *testing.T) {
	val, ok := GetDuration("OSSKIT_TEST_UNSET")
	require.Zero(t, val)
	require.False(t, ok)

	t.Setenv("OSSKIT_TEST_DURATION", "30s")

	val, ok = GetDuration("OSSKIT_TEST_DURATION")
	require.Equal(t, 30*time.Second, val)
	require.True(t, ok)

	t.Setenv("OSSKIT_TEST_DURATION", "30")

	val, ok = GetDuration("OSSKIT_TEST_DURATION")
	require.Zero(t, val)
	require.False(t, ok)
}
