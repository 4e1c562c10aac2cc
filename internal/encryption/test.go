package encryption

import (
	"bytes"
	"fmt"
	"io"

	"jobtrack/internal/tracker"
)

// testMagic marks output of TestEncryptor.
var testMagic = []byte("JTENC1\n")

// TestEncryptor is a reversible stand-in for tests: it prefixes a marker
// instead of encrypting, and every passphrase unlocks it.
type TestEncryptor struct {
	configured bool
}

var _ tracker.Encryptor = (*TestEncryptor)(nil)

func NewTestEncryptor() *TestEncryptor {
	return &TestEncryptor{configured: true}
}

func (e *TestEncryptor) Setup(string) error {
	e.configured = true
	return nil
}

func (e *TestEncryptor) Encrypt(r io.Reader, w io.Writer) error {
	if _, err := w.Write(testMagic); err != nil {
		return fmt.Errorf("writing marker: %w", err)
	}
	_, err := io.Copy(w, r)
	return err
}

func (e *TestEncryptor) Unlock(string) (tracker.DecryptionContext, error) {
	return testDecryptionContext{}, nil
}

func (e *TestEncryptor) IsConfigured() bool {
	return e.configured
}

type testDecryptionContext struct{}

func (testDecryptionContext) Decrypt(r io.Reader, w io.Writer) error {
	marker := make([]byte, len(testMagic))
	if _, err := io.ReadFull(r, marker); err != nil || !bytes.Equal(marker, testMagic) {
		return fmt.Errorf("input was not produced by TestEncryptor")
	}
	_, err := io.Copy(w, r)
	return err
}
