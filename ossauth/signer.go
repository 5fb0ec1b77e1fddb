package ossauth

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
)

// signatureScheme is the scheme used in the 'Authorization' header.
//
// Authorization = "OSS " + AccessKeyID + ":" + Signature
// Signature = Base64(HMAC-SHA1(AccessKeySecret, UTF-8-Encoding-Of(CanonicalString)))
const signatureScheme = "OSS"

// Sign returns the base64 encoded HMAC-SHA1 signature of the given canonical string.
//
// NOTE: This is a pure function, signing the same canonical string with the same secret always yields the same
// signature.
func Sign(secret, canonical string) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write([]byte(canonical))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Authorization returns the value for the 'Authorization' header given an access key id and a signature computed using
// 'Sign'.
func Authorization(accessKeyID, signature string) string {
	return fmt.Sprintf("%s %s:%s", signatureScheme, accessKeyID, signature)
}
