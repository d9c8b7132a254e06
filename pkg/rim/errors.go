package rim

import "errors"

var (
	// ErrDegenerateInput is returned for sphere pairs whose centers coincide.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrInvalidArc signals an attempt to build an arc with min >= max or a
	// non-finite bound. Well-formed geometry never triggers it.
	ErrInvalidArc = errors.New("invalid arc")

	// ErrOffSphere is returned by CheckOnSpheres when sampled rim points do
	// not lie on both source spheres.
	ErrOffSphere = errors.New("rim not on sphere")
)
