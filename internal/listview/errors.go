package listview

import "errors"

var (
	// ErrInvalidOption is returned by Set for an option value the list cannot use. The option set is left unchanged
	ErrInvalidOption = errors.New("invalid option")

	// ErrMissingAnchor is reported when a list template does not contain the filler anchors
	ErrMissingAnchor = errors.New("list template is missing filler anchors")

	// ErrRendered is returned by a second call to Render
	ErrRendered = errors.New("list view already rendered")

	// ErrRemoved is returned by calls on a removed list view
	ErrRemoved = errors.New("list view removed")
)
