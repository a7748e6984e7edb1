package spheretext

import "errors"

var (
	// ErrNilHost is returned by Mount when the component has no host.
	ErrNilHost = errors.New("spheretext: nil host")

	// ErrAlreadyMounted is returned by Mount on a mounted component.
	ErrAlreadyMounted = errors.New("spheretext: already mounted")

	// ErrTornDown is returned by operations on a torn down component.
	ErrTornDown = errors.New("spheretext: torn down")

	// ErrNoTypeface is recorded when a typeface load resolves without a
	// typeface and without an error.
	ErrNoTypeface = errors.New("spheretext: typeface load returned nothing")
)
