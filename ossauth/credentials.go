package ossauth

import "os"

// Credentials encapsulates the secrets used to sign requests dispatched to the object storage service.
type Credentials struct {
	// AccessKeyID is the public identifier of the key pair, it's included verbatim in the 'Authorization' header.
	AccessKeyID string

	// AccessKeySecret is the shared secret used as the MAC key when signing requests.
	AccessKeySecret string

	// SecurityToken is an optional STS session token, forwarded via a vendor header when present.
	SecurityToken string
}

// Empty returns a boolean indicating whether these credentials are unusable for signing, in which case requests are
// dispatched unauthenticated.
func (c Credentials) Empty() bool {
	return c.AccessKeyID == "" || c.AccessKeySecret == ""
}

// Provider is an interface which allows fetching credentials from a number of different sources.
type Provider interface {
	GetCredentials() Credentials
}

// Static implements the 'Provider' interface and always returns fixed credentials.
type Static struct {
	Credentials
}

var _ Provider = (*Static)(nil)

func (s *Static) GetCredentials() Credentials {
	return s.Credentials
}

// Environment implements the 'Provider' interface sourcing credentials from the process environment.
type Environment struct{}

var _ Provider = (*Environment)(nil)

func (e *Environment) GetCredentials() Credentials {
	return Credentials{
		AccessKeyID:     os.Getenv("OSS_ACCESS_KEY_ID"),
		AccessKeySecret: os.Getenv("OSS_ACCESS_KEY_SECRET"),
		SecurityToken:   os.Getenv("OSS_SECURITY_TOKEN"),
	}
}
