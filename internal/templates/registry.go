// Package templates holds the card designs the engine can render.
package templates

import (
	"sync"

	"github.com/youruser/agentcard/internal/render"
)

// Default is the process-wide template table, built on first use and never
// modified afterwards.
var Default = sync.OnceValue(func() *render.Registry {
	return render.MustNewRegistry(
		Minimal(),
		Classic(),
		Figma3(),
		Compact(),
	)
})
