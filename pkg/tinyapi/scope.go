package tinyapi

// Params holds named route parameters and any extra keyword-style arguments
// for a call. Keys matching a placeholder name are consumed during route
// resolution; the rest are forwarded untouched to the transport.
type Params map[string]any

// Clone returns a shallow copy of the params.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// MergeScopes folds an ordered list of parameter scopes into one mapping.
// Scopes are given lowest precedence first; on key conflict the later
// scope's value replaces the earlier one wholesale, map values included.
// Typical order: client defaults, endpoint defaults, call arguments.
func MergeScopes(scopes ...Params) Params {
	merged := Params{}
	for _, scope := range scopes {
		for k, v := range scope {
			merged[k] = v
		}
	}
	return merged
}
