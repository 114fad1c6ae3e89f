//go:build !xcontainer_debug

package debug

// Enabled reports whether the package was built with the
// xcontainer_debug tag.
const Enabled = false
