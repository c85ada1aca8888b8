package textwidth

import (
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupOnce sync.Once

func setup() {
	setupOnce.Do(func() {
		tracer().Infof("setting up UAX#29 grapheme classes")
		grapheme.SetupGraphemeClasses()
	})
}

// Width returns the number of fixed-width columns s occupies, resolving
// East Asian widths with the given context. A nil context defaults to
// uax11.LatinContext.
func Width(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	setup()
	if context == nil {
		context = uax11.LatinContext
	}
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, context)
}

// Measure measures s in a context derived from the user's environment. Its
// signature matches pprint.MeasureFunc, so it can be installed directly:
//
//	pp.SetMeasure(textwidth.Measure)
func Measure(s string) int {
	envOnce.Do(func() {
		envContext = uax11.ContextFromEnvironment()
	})
	return Width(s, envContext)
}

var (
	envOnce    sync.Once
	envContext *uax11.Context
)
