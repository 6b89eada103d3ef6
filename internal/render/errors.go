package render

import "fmt"

// FormatError reports a format token whose width or alignment section could
// not be parsed. The token is carried verbatim so the user sees exactly what
// they typed.
type FormatError struct {
	Token string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unable to parse format token %q", e.Token)
}

// UnknownTitleError reports a requested column title that matched nothing in
// the vocabulary or the derived-field catalog.
type UnknownTitleError struct {
	Title string
}

func (e *UnknownTitleError) Error() string {
	return fmt.Sprintf("%q is not a valid title", e.Title)
}

// UnsetWidthError reports an attempt to format an entry before the column
// width was resolved. This is a sequencing bug in the caller, not a user
// condition.
type UnsetWidthError struct {
	Title string
}

func (e *UnsetWidthError) Error() string {
	return fmt.Sprintf("attempting to format %s with unset width", e.Title)
}
