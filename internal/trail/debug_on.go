//go:build trail_debug

package trail

const debugChecks = true
