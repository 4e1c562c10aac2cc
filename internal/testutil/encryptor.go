package testutil

import (
	"jobtrack/internal/encryption"
	"jobtrack/internal/tracker"
)

// NewTestEncryptor creates a reversible, non-cryptographic encryptor.
func NewTestEncryptor() tracker.Encryptor {
	return encryption.NewTestEncryptor()
}
