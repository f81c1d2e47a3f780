package render

import "errors"

var (
	// ErrUnknownTemplate and ErrUnsupportedSide are configuration errors:
	// the request names something the registry cannot draw.
	ErrUnknownTemplate = errors.New("render: unknown template")
	ErrUnsupportedSide = errors.New("render: template does not support side")
	ErrInvalidSize     = errors.New("render: output size must be positive")

	// ErrRenderFailed wraps a strategy error or panic. The host shows it as
	// "could not render".
	ErrRenderFailed = errors.New("render: could not render card")
	ErrNotReady     = errors.New("render: result is not ready")
	// ErrSuperseded finishes a render that a newer request replaced.
	ErrSuperseded = errors.New("render: superseded by a newer request")
)
