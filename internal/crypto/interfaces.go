// Package crypto seals secrets kept on the client device.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer encrypts small secrets for storage at rest.
//
// Seal binds the ciphertext to aad: the same aad must be supplied to Open,
// so a sealed blob copied to another record fails to open.
type Sealer interface {
	// Seal encrypts plaintext and returns nonce || ciphertext.
	Seal(plaintext, aad []byte) ([]byte, error)

	// Open reverses Seal. It returns an error if the key, the aad or the
	// blob itself does not match.
	Open(sealed, aad []byte) ([]byte, error)
}
