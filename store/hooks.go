package store

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The store calls them on hot paths.
type Hooks interface {
	// A single entry was deleted by the store on read.
	// reason ∈ {"hash_mismatch", "decode_error", "too_large"}
	SelfHeal(storageKey, reason string)

	// A bulk entry was rejected and deleted; the read fell back to singles.
	// reason ∈ {"decode_error", "member_mismatch"}
	BulkRejected(namespace string, requested int, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(storageKey string, isBulk bool)

	// Provider returned an error. op ∈ {"get", "set", "del"}
	ProviderError(op string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string)          {}
func (NopHooks) BulkRejected(string, int, string) {}
func (NopHooks) ProviderSetRejected(string, bool) {}
func (NopHooks) ProviderError(string, error)      {}
