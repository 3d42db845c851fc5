package nobrain

// Compose builds the transform input from secrets and public context.
//
// Field order is fixed and there are no separators:
//
//	keyed:   secondary ‖ username ‖ domain
//	unkeyed: secondary ‖ master ‖ username ‖ domain
//
// A keyed transform receives master as its key, so it is left out of the
// input. An empty secondary or username is omitted. Reordering fields or
// adding separators changes every derived password.
//
// The returned slice is freshly allocated; callers should Wipe it once the
// derivation returns.
func Compose(master, secondary []byte, username, domain string, keyed bool) []byte {
	size := len(secondary) + len(username) + len(domain)
	if !keyed {
		size += len(master)
	}
	out := make([]byte, 0, size)
	out = append(out, secondary...)
	if !keyed {
		out = append(out, master...)
	}
	out = append(out, username...)
	out = append(out, domain...)
	return out
}

// Wipe overwrites b with zeros.
func Wipe(b []byte) {
	clear(b)
}
