package ossauth

import (
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/exp/slices"
)

const (
	// HeaderPrefix is the vendor prefix for security/meta headers which take part in canonicalization.
	HeaderPrefix = "x-oss-"

	// HeaderSecurityToken is the vendor header used to forward an STS session token.
	//
	// NOTE: The header carries the vendor prefix so it's automatically included in canonicalization.
	HeaderSecurityToken = "x-oss-security-token"
)

// CanonicalRequest encapsulates the attributes of a request which take part in canonicalization; it's the sole input
// to 'CanonicalString'.
type CanonicalRequest struct {
	Method       string
	Header       http.Header
	Bucket       string
	Object       string
	SubResources url.Values
}

// CanonicalString returns the deterministic string representation of the given request which is used as the signing
// input.
//
// The format is dictated by the service's signature contract and must match it bit-for-bit, any divergence in
// ordering, escaping or case breaks authentication silently:
//
//	VERB + "\n" +
//	Content-MD5 + "\n" +
//	Content-Type + "\n" +
//	Date + "\n" +
//	CanonicalizedVendorHeaders +
//	CanonicalizedResource
func CanonicalString(request CanonicalRequest) string {
	var builder strings.Builder

	builder.WriteString(request.Method)
	builder.WriteString("\n")
	builder.WriteString(request.Header.Get("Content-MD5"))
	builder.WriteString("\n")
	builder.WriteString(request.Header.Get("Content-Type"))
	builder.WriteString("\n")
	builder.WriteString(request.Header.Get("Date"))
	builder.WriteString("\n")
	builder.WriteString(canonicalizedHeaders(request.Header))
	builder.WriteString(canonicalizedResource(request.Bucket, request.Object, request.SubResources))

	return builder.String()
}

// canonicalizedHeaders returns the vendor prefixed headers i.e. those beginning with 'x-oss-', each lowercased and
// rendered as 'name:value' followed by a newline, sorted lexicographically by name.
func canonicalizedHeaders(header http.Header) string {
	names := make([]string, 0, len(header))

	for name := range header {
		if lowered := strings.ToLower(name); strings.HasPrefix(lowered, HeaderPrefix) {
			names = append(names, lowered)
		}
	}

	slices.Sort(names)

	var builder strings.Builder

	for _, name := range names {
		builder.WriteString(name)
		builder.WriteString(":")
		builder.WriteString(strings.TrimSpace(strings.Join(header.Values(name), ",")))
		builder.WriteString("\n")
	}

	return builder.String()
}

// canonicalizedResource returns the resource path ('/bucket/object', '/bucket/' or '/') followed by the sorted
// sub-resources.
//
// NOTE: The object key is included raw here, URL escaping only applies to the dispatched request path; the service
// unescapes the path before re-deriving the canonical form.
func canonicalizedResource(bucket, object string, subResources url.Values) string {
	resource := "/"

	if bucket != "" {
		resource += bucket + "/" + object
	}

	return resource + canonicalizedSubResources(subResources)
}

// canonicalizedSubResources returns the sub-resources sorted lexicographically by key and joined as 'key=value' (or a
// bare 'key' when the value is empty) with '&', prefixed with '?' only when non-empty.
func canonicalizedSubResources(subResources url.Values) string {
	if len(subResources) == 0 {
		return ""
	}

	keys := make([]string, 0, len(subResources))
	for key := range subResources {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	pairs := make([]string, 0, len(keys))

	for _, key := range keys {
		if value := subResources.Get(key); value != "" {
			pairs = append(pairs, key+"="+value)
		} else {
			pairs = append(pairs, key)
		}
	}

	return "?" + strings.Join(pairs, "&")
}
