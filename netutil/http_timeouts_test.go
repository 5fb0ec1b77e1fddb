package netutil

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"github.com/evergrid/osskit/ptrutil"
)

func TestHTTPTimeoutsUnmarshalJSON(t *testing.T) {
	type test struct {
		name     string
		input    string
		expected HTTPTimeouts
		invalid  bool
	}

	tests := []*test{
		{
			name:     "Empty",
			input:    `{}`,
			expected: HTTPTimeouts{},
		},
		{
			name:  "AllProvided",
			input: `{"dialer":"10s","keep_alive":"30s","transport_idle_conn":"90s","transport_continue":"5s",` + `"transport_response_header":"10s","transport_tls_handshake":"10s"}`,
			expected: HTTPTimeouts{
				Dialer:                  ptrutil.ToPtr(10 * time.Second),
				KeepAlive:               ptrutil.ToPtr(30 * time.Second),
				TransportIdleConn:       ptrutil.ToPtr(90 * time.Second),
				TransportContinue:       ptrutil.ToPtr(5 * time.Second),
				TransportResponseHeader: ptrutil.ToPtr(10 * time.Second),
				TransportTLSHandshake:   ptrutil.ToPtr(10 * time.Second),
			},
		},
		{
			name:     "Partial",
			input:    `{"dialer":"1m"}`,
			expected: HTTPTimeouts{Dialer: ptrutil.ToPtr(time.Minute)},
		},
		{
			name:    "InvalidDuration",
			input:   `{"dialer":"not-a-duration"}`,
			invalid: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var actual HTTPTimeouts

			err := jsoniter.Unmarshal([]byte(test.input), &actual)
			if test.invalid {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.expected, actual)
		})
	}
}
