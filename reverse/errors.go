package reverse

import "errors"

// ErrAmbiguous is not returned directly — Parse always produces a
// best-effort result — but is available to callers that want to
// treat ParseResult.Ambiguous as a Go error via fmt.Errorf("%w", ...).
var ErrAmbiguous = errors.New("reverse: multiple arrow sources traced to the same target and had to be disambiguated heuristically")
