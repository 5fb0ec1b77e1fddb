package ossauth

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalString(t *testing.T) {
	type test struct {
		name     string
		request  CanonicalRequest
		expected string
	}

	tests := []*test{
		{
			name:     "ServiceLevel",
			request:  CanonicalRequest{Method: http.MethodGet, Header: http.Header{}},
			expected: "GET\n\n\n\n/",
		},
		{
			name: "BucketOnly",
			request: CanonicalRequest{
				Method: http.MethodGet,
				Header: http.Header{"Date": []string{"Thu, 17 Nov 2005 18:49:58 GMT"}},
				Bucket: "bucket",
			},
			expected: "GET\n\n\nThu, 17 Nov 2005 18:49:58 GMT\n/bucket/",
		},
		{
			name: "BucketAndObject",
			request: CanonicalRequest{
				Method: http.MethodPut,
				Header: http.Header{
					"Content-Md5":  []string{"eB5eJF1ptWaXm4bijSPyxw=="},
					"Content-Type": []string{"text/html"},
					"Date":         []string{"Thu, 17 Nov 2005 18:49:58 GMT"},
				},
				Bucket: "bucket",
				Object: "key",
			},
			expected: "PUT\neB5eJF1ptWaXm4bijSPyxw==\ntext/html\nThu, 17 Nov 2005 18:49:58 GMT\n/bucket/key",
		},
		{
			name: "VendorHeadersSorted",
			request: CanonicalRequest{
				Method: http.MethodPut,
				Header: http.Header{
					"X-Oss-Meta-Author": []string{"foo@bar.com"},
					"X-Oss-Magic":       []string{"abracadabra"},
					"Content-Length":    []string{"42"},
				},
				Bucket: "bucket",
				Object: "key",
			},
			expected: "PUT\n\n\n\nx-oss-magic:abracadabra\nx-oss-meta-author:foo@bar.com\n/bucket/key",
		},
		{
			name: "SubResourcesSorted",
			request: CanonicalRequest{
				Method: http.MethodGet,
				Header: http.Header{},
				Bucket: "bucket",
				SubResources: url.Values{
					"uploadId": []string{"42"},
					"acl":      []string{""},
				},
			},
			expected: "GET\n\n\n\n/bucket/?acl&uploadId=42",
		},
		{
			name: "ObjectWithSubResource",
			request: CanonicalRequest{
				Method:       http.MethodGet,
				Header:       http.Header{},
				Bucket:       "bucket",
				Object:       "key",
				SubResources: url.Values{"acl": []string{""}},
			},
			expected: "GET\n\n\n\n/bucket/key?acl",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, CanonicalString(test.request))
		})
	}
}

// The canonical string is the signing input for both the client and the server, identical inputs must always yield a
// byte-identical string.
func TestCanonicalStringDeterministic(t *testing.T) {
	request := CanonicalRequest{
		Method: http.MethodPut,
		Header: http.Header{
			"Date":              []string{"Thu, 17 Nov 2005 18:49:58 GMT"},
			"X-Oss-Meta-Author": []string{"foo@bar.com"},
			"X-Oss-Magic":       []string{"abracadabra"},
			"X-Oss-Meta-Mtime":  []string{"1132605455"},
		},
		Bucket:       "bucket",
		Object:       "key",
		SubResources: url.Values{"uploadId": []string{"42"}, "partNumber": []string{"1"}, "acl": []string{""}},
	}

	expected := CanonicalString(request)

	for i := 0; i < 64; i++ {
		require.Equal(t, expected, CanonicalString(request))
	}
}

func TestCanonicalStringHeaderValuesTrimmed(t *testing.T) {
	request := CanonicalRequest{
		Method: http.MethodGet,
		Header: http.Header{"X-Oss-Magic": []string{" abracadabra "}},
	}

	require.Equal(t, "GET\n\n\n\nx-oss-magic:abracadabra\n/", CanonicalString(request))
}
