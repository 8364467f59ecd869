package auth

// Principal is the resolved identity a token subject maps onto.
type Principal interface {
	// Username returns the unique login identifier, typically an email.
	Username() string
	// HasRole reports whether the principal carries the named role,
	// ignoring case.
	HasRole(role string) bool
	// Authorities lists the granted authority strings.
	Authorities() []string
}
