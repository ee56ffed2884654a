package domain

// AddressKind discriminates the closed set of reverse-geocoding outcomes.
type AddressKind int

const (
	// AddressOK means the lookup returned a named location.
	AddressOK AddressKind = iota
	// AddressUnknown means the lookup succeeded but had no named location.
	AddressUnknown
	// AddressFailed means the lookup errored (network, decode, non-2xx).
	AddressFailed
)

// Textual sentinels for the two failure outcomes. These appear verbatim in
// notification bodies and log lines, so downstream wording depends on them.
const (
	addressUnknownText = "unknown"
	addressFailedText  = "failed"
)

// Address is the result of a reverse-geocoding lookup. It is never empty:
// failures fold into one of the two sentinel texts.
type Address struct {
	Kind AddressKind
	Name string
}

// KnownAddress wraps a resolved place name.
func KnownAddress(name string) Address { return Address{Kind: AddressOK, Name: name} }

// UnknownAddress marks a lookup that yielded no named location.
func UnknownAddress() Address { return Address{Kind: AddressUnknown} }

// FailedAddress marks a lookup that errored.
func FailedAddress() Address { return Address{Kind: AddressFailed} }

// String returns the display text: the place name, "unknown", or "failed".
func (a Address) String() string {
	switch a.Kind {
	case AddressOK:
		return a.Name
	case AddressUnknown:
		return addressUnknownText
	default:
		return addressFailedText
	}
}
