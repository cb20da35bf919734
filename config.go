package lwmem

import s "github.com/prataprc/gosettings"

import "github.com/dpirly/lwmem/api"

// DefaultAlignment is the alignment constant used when settings passed to
// NewHeap don't override "align".
const DefaultAlignment = int64(8)

// Defaultsettings returns lwmem's baked-in configuration. Callers Mixin
// their overrides on top before passing the result to NewHeap.
//
// "align" (int64, default: 8)
//		Global alignment constant A. Must be a power of two, at least
//		api.MinAlignment and at most api.MaxAlignment.
//
// "log.components" (string, default: "")
//		Comma-separated list of component names to enable logging for,
//		equivalent to calling LogComponents at startup.
func Defaultsettings() s.Settings {
	return s.Settings{
		"align":          DefaultAlignment,
		"log.components": "",
	}
}

func validAlignment(a int64) bool {
	return a >= api.MinAlignment && a <= api.MaxAlignment && a&(a-1) == 0
}
