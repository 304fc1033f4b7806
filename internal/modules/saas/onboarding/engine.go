package onboarding

import "strings"

// Input is everything the flow looks at for one inbound message.
type Input struct {
	State     State
	Body      string
	HasMedia  bool
	MediaType string

	// ExistingBusinessName is set when the conversation (or its phone) is
	// already bound to a business. It blocks a second provisioning.
	ExistingBusinessName string
}

// NewBusiness asks the caller to provision a tenant in the same unit of work.
type NewBusiness struct {
	Name string
}

// Decision is the outcome of one transition.
type Decision struct {
	Reply          string
	Next           State
	CreateBusiness *NewBusiness
}

// Transition is total: every input yields a non-empty reply and a valid
// next state. Unknown or terminal states fall back to initial.
func Transition(in Input) Decision {
	switch in.State {
	case StateInitial:
		if IsStartCommand(in.Body) {
			return Decision{Reply: ReplyWelcome, Next: StateAwaitingBusinessName}
		}
		return fallback()

	case StateAwaitingBusinessName:
		if !IsBusinessName(in.Body) {
			return fallback()
		}
		if in.ExistingBusinessName != "" {
			return Decision{Reply: AlreadyRegistered(in.ExistingBusinessName), Next: StateProductsPrompt}
		}
		name := strings.TrimSpace(in.Body)
		return Decision{
			Reply:          NameConfirmed(name),
			Next:           StateProductsPrompt,
			CreateBusiness: &NewBusiness{Name: name},
		}

	case StateProductsPrompt:
		switch {
		case WantsUpload(in.Body):
			return Decision{Reply: ReplyUploadInstructions, Next: StateAwaitingProductUpload}
		case WantsManual(in.Body):
			return Decision{Reply: ReplyManualInstructions, Next: StateAwaitingProductUpload}
		default:
			return Decision{Reply: ReplyChoiceNotUnderstood, Next: StateProductsPrompt}
		}

	case StateAwaitingProductUpload:
		if in.HasMedia && IsCSV(in.MediaType) {
			return Decision{Reply: ReplyCSVReceived, Next: StateComplete}
		}
		return Decision{Reply: ReplyAwaitingFile, Next: StateAwaitingProductUpload}

	default:
		// onboarding_complete and anything unrecognized
		return fallback()
	}
}

func fallback() Decision {
	return Decision{Reply: ReplyFallback, Next: StateInitial}
}
