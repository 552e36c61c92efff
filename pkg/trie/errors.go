package trie

import "errors"

// Sentinel errors returned by the core's operations. Their numeric identity
// is not part of the contract; callers should compare with errors.Is.
var (
	ErrTauTooLarge      = errors.New("trie: maxtau exceeds the absolute limit")
	ErrTauExceedsMax    = errors.New("trie: requested tau greater than the trie's maxtau")
	ErrTooLong          = errors.New("trie: string longer than MaxBarcodeLen")
	ErrQueryTooLong     = errors.New("trie: query longer than MaxBarcodeLen")
	ErrBottomOutOfRange = errors.New("trie: bottom must be in [1, M)")
	ErrBadSymbol        = errors.New("trie: character outside the trie alphabet")
	ErrEmptyString      = errors.New("trie: refusing to insert the empty string")
	ErrOutOfMemory      = errors.New("trie: allocation failed")
	ErrInternalNoParent = errors.New("trie: insert called with a nil parent")
	ErrBadSearchBounds  = errors.New("trie: search bounds must satisfy 0 <= start <= trail < len(query)")
)

// lastError is the module-wide, single-slot last-error indicator. It exists
// because the search's inner push() can fail deep in a recursion with no
// return path back to the caller: recordError lets that failure surface
// without threading an error return through every stack frame, at the cost
// of the same caveat the original core carries — it is not safe for
// concurrent callers sharing a trie across goroutines.
var lastError error

func recordError(err error) {
	lastError = err
}

// CheckAndResetError reads and clears the pending error, mirroring
// check_trie_error_and_reset() in the original core. Returns nil when no
// error is pending.
func CheckAndResetError() error {
	err := lastError
	lastError = nil
	return err
}
