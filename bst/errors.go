package bst

import "github.com/ansel1/merry"

// Errors returned by Tree operations. Failures carry the offending key, which
// can be recovered with ErrKey.
var (
	ErrDuplicateKey = merry.New("bst: key already present")
	ErrNotFound     = merry.New("bst: key not found")
	ErrEmptyTree    = merry.New("bst: tree is empty")
)

const errKeyValue = "key"

func withKey(err error, key any) error {
	return merry.Wrap(err).WithValue(errKeyValue, key)
}

// ErrKey returns the key attached to err, or nil if err carries none.
func ErrKey(err error) any {
	return merry.Value(err, errKeyValue)
}
