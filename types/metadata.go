package types

// Metadata carries free-form notes attached to an invoice. Keys and values
// are passed through to the API untouched.
type Metadata map[string]string
