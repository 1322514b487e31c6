package response

// Params is the open bag of named numeric parameters a response function is
// invoked with. Keys a function does not recognize are ignored rather than
// rejected, so configurations written for a newer variant keep working
// against an older one.
type Params map[string]float64

// Float returns the value stored under key, or def when the key is absent.
func (p Params) Float(key string, def float64) float64 {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// Require returns the value stored under key, or an InvalidParameterError
// when the key is absent. Used by variants whose parameters have no
// documented default.
func (p Params) Require(key string) (float64, error) {
	v, ok := p[key]
	if !ok {
		return 0, &InvalidParameterError{Key: key, Reason: "required parameter is missing and has no default"}
	}
	return v, nil
}
