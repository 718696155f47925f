package domain

// StripeReport is the outcome of a payment gateway startup check.
type StripeReport struct {
	KeyPresent    bool   `json:"key_present"`
	ClientCreated bool   `json:"client_created"`
	Verified      bool   `json:"verified"`
	Error         string `json:"error,omitempty"`
}

// HasStripeKey reports whether the secret key variable is set.
func HasStripeKey(key string) bool {
	return key != ""
}

// OK is true when no step of the check failed.
func (r StripeReport) OK() bool {
	return r.KeyPresent && r.ClientCreated && r.Error == ""
}
