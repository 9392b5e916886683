// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha1" //nolint:gosec // PRF id 0 is part of the stored envelope format.
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/pbkdf2"

	"profilehub/internal/domain/entity"
	"profilehub/internal/domain/service"
	"profilehub/internal/errors"
)

// Pseudorandom-function identifiers as stored in the envelope header.
// The mapping is fixed; changing it would invalidate every stored credential.
const (
	prfHMACSHA1   uint32 = 0
	prfHMACSHA256 uint32 = 1
	prfHMACSHA512 uint32 = 2
)

const (
	formatMarker byte = 0x01

	// Header: 1 marker byte + three big-endian uint32 fields
	// (PRF id, iteration count, salt length).
	headerLength = 13

	saltLength   = 16
	subkeyLength = 32
	iterCount    = 10000
)

// pbkdf2Codec derives and verifies password credentials using PBKDF2 with a
// self-describing binary envelope. The envelope layout is the one byte-level
// contract shared with every previously stored credential:
//
//	[0]      format marker 0x01
//	[1:5]    PRF identifier, big endian
//	[5:9]    iteration count, big endian
//	[9:13]   salt length, big endian
//	[13:13+saltLen]  salt
//	[13+saltLen:]    derived subkey
type pbkdf2Codec struct {
	prf uint32
}

// NewPBKDF2Codec is the constructor for pbkdf2Codec.
// It returns the implementation as a service.PasswordCodec interface.
func NewPBKDF2Codec() service.PasswordCodec {
	return &pbkdf2Codec{prf: prfHMACSHA256}
}

// Hash generates a credential for the given plaintext password.
func (c *pbkdf2Codec) Hash(password string) (*entity.Credential, error) {
	if password == "" {
		return nil, errors.New("password must not be empty")
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}

	subkey := pbkdf2.Key([]byte(password), salt, iterCount, subkeyLength, prfHash(c.prf))

	envelope := make([]byte, headerLength+saltLength+subkeyLength)
	envelope[0] = formatMarker
	binary.BigEndian.PutUint32(envelope[1:5], c.prf)
	binary.BigEndian.PutUint32(envelope[5:9], uint32(iterCount))
	binary.BigEndian.PutUint32(envelope[9:13], uint32(saltLength))
	copy(envelope[headerLength:], salt)
	copy(envelope[headerLength+saltLength:], subkey)

	return &entity.Credential{
		PasswordSalt: base64.StdEncoding.EncodeToString(salt),
		PasswordHash: base64.StdEncoding.EncodeToString(envelope),
	}, nil
}

// Verify reports whether candidate matches the stored base64 envelope.
// Malformed or mismatched input yields false, never an error: a stored value
// this codec cannot parse is by definition not a match.
func (c *pbkdf2Codec) Verify(storedHash, candidate string) bool {
	if storedHash == "" || candidate == "" {
		return false
	}

	envelope, err := base64.StdEncoding.DecodeString(storedHash)
	if err != nil || len(envelope) == 0 {
		return false
	}

	if envelope[0] != formatMarker {
		return false
	}
	if len(envelope) < headerLength {
		return false
	}

	// Unknown PRF ids fall back to HMAC-SHA256 when read, but still have to
	// match the configured PRF; only id 1 ever round-trips here.
	storedPRF := binary.BigEndian.Uint32(envelope[1:5])
	switch storedPRF {
	case prfHMACSHA1, prfHMACSHA256, prfHMACSHA512:
	default:
		storedPRF = prfHMACSHA256
	}
	if storedPRF != c.prf {
		return false
	}

	if binary.BigEndian.Uint32(envelope[5:9]) != uint32(iterCount) {
		return false
	}

	storedSaltLen := binary.BigEndian.Uint32(envelope[9:13])
	if storedSaltLen != uint32(saltLength) {
		return false
	}
	if len(envelope) < headerLength+saltLength {
		return false
	}

	salt := envelope[headerLength : headerLength+saltLength]
	expectedSubkey := envelope[headerLength+saltLength:]
	if len(expectedSubkey) != subkeyLength {
		return false
	}

	actualSubkey := pbkdf2.Key([]byte(candidate), salt, iterCount, len(expectedSubkey), prfHash(c.prf))

	// Constant-time comparison so the duration does not leak where the first
	// mismatching byte sits.
	return subtle.ConstantTimeCompare(actualSubkey, expectedSubkey) == 1
}

// prfHash maps a PRF identifier to its hash constructor.
func prfHash(prf uint32) func() hash.Hash {
	switch prf {
	case prfHMACSHA1:
		return sha1.New
	case prfHMACSHA512:
		return sha512.New
	default:
		return sha256.New
	}
}
