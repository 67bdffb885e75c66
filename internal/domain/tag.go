package domain

import "errors"

// Tags are plain strings rather than entities of their own. The registry of
// known tags lives in the store layer; the domain only defines what makes a
// tag name acceptable.

// ErrTagNameRequired is returned when a tag name is missing or blank.
var ErrTagNameRequired = errors.New("tag name is required")
