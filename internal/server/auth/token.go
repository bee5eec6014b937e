package auth

import "github.com/dmitrijs2005/contactvault/internal/common"

// tokenBytes is the number of random bytes in a session token. 32 bytes
// (256 bits) keeps guessing infeasible; the hex form is 64 characters.
const tokenBytes = 32

// IssueToken generates an opaque session token. The token carries no
// structure: validity is determined solely by looking it up in the store,
// which makes revocation a single column write.
func IssueToken() (string, error) {
	return common.MakeRandHexString(tokenBytes)
}
