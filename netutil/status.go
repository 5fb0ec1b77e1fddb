package netutil

// IsSuccess returns a boolean indicating whether the provided status code represents a successful response i.e. one
// whose body may be consumed as a payload rather than as an error document.
func IsSuccess(status int) bool {
	return status < 300
}
