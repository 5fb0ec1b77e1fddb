package envvar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/evergrid/osskit/netutil"
	"github.com/evergrid/osskit/ptrutil"
)

func TestGetHTTPTimeouts(t *testing.T) {
	defaults := netutil.HTTPTimeouts{
		Dialer:    ptrutil.ToPtr(10 * time.Second),
		KeepAlive: ptrutil.ToPtr(30 * time.Second),
	}

	t.Run("NotSet", func(t *testing.T) {
		timeouts, err := GetHTTPTimeouts("OSSKIT_TEST_HTTP_TIMEOUTS", defaults)
		require.NoError(t, err)
		require.Equal(t, defaults, timeouts)
	})

	t.Run("OverridesDefaults", func(t *testing.T) {
		t.Setenv("OSSKIT_TEST_HTTP_TIMEOUTS", `{"dialer":"5s"}`)

		timeouts, err := GetHTTPTimeouts("OSSKIT_TEST_HTTP_TIMEOUTS", defaults)
		require.NoError(t, err)
		require.Equal(t, 5*time.Second, *timeouts.Dialer)
		require.Equal(t, 30*time.Second, *timeouts.KeepAlive)
	})

	t.Run("Invalid", func(t *testing.T) {
		t.Setenv("OSSKIT_TEST_HTTP_TIMEOUTS", `{"dialer":42}`)

		_, err := GetHTTPTimeouts("OSSKIT_TEST_HTTP_TIMEOUTS", defaults)
		require.Error(t, err)
	})
}
