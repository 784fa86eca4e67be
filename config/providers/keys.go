package providers

import "strings"

// APIKeys holds the optional provider API keys consumed by the assembler.
// Every key is optional: a missing key simply removes the endpoints that
// would have used it.
//
// WARNING: This data type contains sensitive fields and should not be logged.
type APIKeys struct {
	Alchemy   string
	DRPC      string
	Helius    string
	Infura    string
	QuickNode string
}

// normalize trims surrounding whitespace from every key, so that a
// whitespace-only value reads as absent.
func (k APIKeys) normalize() APIKeys {
	return APIKeys{
		Alchemy:   strings.TrimSpace(k.Alchemy),
		DRPC:      strings.TrimSpace(k.DRPC),
		Helius:    strings.TrimSpace(k.Helius),
		Infura:    strings.TrimSpace(k.Infura),
		QuickNode: strings.TrimSpace(k.QuickNode),
	}
}

// HasAny reports whether at least one key is present after normalization.
func (k APIKeys) HasAny() bool {
	n := k.normalize()

	return n.Alchemy != "" || n.DRPC != "" || n.Helius != "" || n.Infura != "" || n.QuickNode != ""
}
