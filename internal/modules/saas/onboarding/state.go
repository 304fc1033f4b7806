// Package onboarding holds the WhatsApp onboarding conversation flow. It is
// pure: no I/O, no clock, no randomness.
package onboarding

// State is the persisted position of a conversation in the onboarding flow.
type State string

const (
	StateInitial               State = "initial"
	StateAwaitingBusinessName  State = "awaiting_business_name"
	StateProductsPrompt        State = "onboarding_products_prompt"
	StateAwaitingProductUpload State = "awaiting_product_upload"
	StateComplete              State = "onboarding_complete"
)

// States lists every member of the state enum.
var States = []State{
	StateInitial,
	StateAwaitingBusinessName,
	StateProductsPrompt,
	StateAwaitingProductUpload,
	StateComplete,
}

// Valid reports whether s is a member of the state enum.
func (s State) Valid() bool {
	for _, known := range States {
		if s == known {
			return true
		}
	}
	return false
}

func (s State) String() string {
	return string(s)
}
