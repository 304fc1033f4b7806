package onboarding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		name       string
		in         Input
		wantNext   State
		wantReply  string
		wantCreate string
	}{
		{"initial hello", Input{State: StateInitial, Body: "Hello"}, StateAwaitingBusinessName, ReplyWelcome, ""},
		{"initial hello with spaces", Input{State: StateInitial, Body: "  HELLO "}, StateAwaitingBusinessName, ReplyWelcome, ""},
		{"initial other", Input{State: StateInitial, Body: "what is this"}, StateInitial, ReplyFallback, ""},
		{"initial hello there", Input{State: StateInitial, Body: "hello there"}, StateInitial, ReplyFallback, ""},
		{"name accepted", Input{State: StateAwaitingBusinessName, Body: "Ajala Ventures"}, StateProductsPrompt, NameConfirmed("Ajala Ventures"), "Ajala Ventures"},
		{"name trimmed", Input{State: StateAwaitingBusinessName, Body: "  Kemi Foods  "}, StateProductsPrompt, NameConfirmed("Kemi Foods"), "Kemi Foods"},
		{"name three chars", Input{State: StateAwaitingBusinessName, Body: "Abc"}, StateProductsPrompt, NameConfirmed("Abc"), "Abc"},
		{"name too short", Input{State: StateAwaitingBusinessName, Body: "AB"}, StateInitial, ReplyFallback, ""},
		{"name whitespace only", Input{State: StateAwaitingBusinessName, Body: "     "}, StateInitial, ReplyFallback, ""},
		{"name greeting hi", Input{State: StateAwaitingBusinessName, Body: "Hi"}, StateInitial, ReplyFallback, ""},
		{"name contains hello", Input{State: StateAwaitingBusinessName, Body: "Hello World Stores"}, StateInitial, ReplyFallback, ""},
		{"name good morning bakery", Input{State: StateAwaitingBusinessName, Body: "Good Morning Bakery"}, StateProductsPrompt, NameConfirmed("Good Morning Bakery"), "Good Morning Bakery"},
		{"name hi-tech", Input{State: StateAwaitingBusinessName, Body: "Hi-Tech Solutions"}, StateProductsPrompt, NameConfirmed("Hi-Tech Solutions"), "Hi-Tech Solutions"},
		{"name with hi inside word", Input{State: StateAwaitingBusinessName, Body: "Chic Boutique"}, StateProductsPrompt, NameConfirmed("Chic Boutique"), "Chic Boutique"},
		{"name already registered", Input{State: StateAwaitingBusinessName, Body: "New Name Ltd", ExistingBusinessName: "Ajala Ventures"}, StateProductsPrompt, AlreadyRegistered("Ajala Ventures"), ""},
		{"prompt upload", Input{State: StateProductsPrompt, Body: "I'll upload a spreadsheet"}, StateAwaitingProductUpload, ReplyUploadInstructions, ""},
		{"prompt spreadsheet", Input{State: StateProductsPrompt, Body: "SPREADSHEET"}, StateAwaitingProductUpload, ReplyUploadInstructions, ""},
		{"prompt manual", Input{State: StateProductsPrompt, Body: "Manual please"}, StateAwaitingProductUpload, ReplyManualInstructions, ""},
		{"prompt one by one", Input{State: StateProductsPrompt, Body: "one by one"}, StateAwaitingProductUpload, ReplyManualInstructions, ""},
		{"prompt upload wins over manual", Input{State: StateProductsPrompt, Body: "upload or manual?"}, StateAwaitingProductUpload, ReplyUploadInstructions, ""},
		{"prompt unclear", Input{State: StateProductsPrompt, Body: "2"}, StateProductsPrompt, ReplyChoiceNotUnderstood, ""},
		{"upload csv", Input{State: StateAwaitingProductUpload, HasMedia: true, MediaType: "text/csv"}, StateComplete, ReplyCSVReceived, ""},
		{"upload csv charset", Input{State: StateAwaitingProductUpload, HasMedia: true, MediaType: "Text/CSV; charset=utf-8"}, StateComplete, ReplyCSVReceived, ""},
		{"upload image", Input{State: StateAwaitingProductUpload, HasMedia: true, MediaType: "image/jpeg"}, StateAwaitingProductUpload, ReplyAwaitingFile, ""},
		{"upload csv type without media", Input{State: StateAwaitingProductUpload, MediaType: "text/csv"}, StateAwaitingProductUpload, ReplyAwaitingFile, ""},
		{"upload text", Input{State: StateAwaitingProductUpload, Body: "manual"}, StateAwaitingProductUpload, ReplyAwaitingFile, ""},
		{"complete", Input{State: StateComplete, Body: "Hello"}, StateInitial, ReplyFallback, ""},
		{"unknown state", Input{State: State("legacy_state"), Body: "Hello"}, StateInitial, ReplyFallback, ""},
		{"empty state", Input{Body: "Hello"}, StateInitial, ReplyFallback, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transition(tt.in)
			assert.Equal(t, tt.wantNext, got.Next)
			assert.Equal(t, tt.wantReply, got.Reply)
			if tt.wantCreate == "" {
				assert.Nil(t, got.CreateBusiness)
				return
			}
			require.NotNil(t, got.CreateBusiness)
			assert.Equal(t, tt.wantCreate, got.CreateBusiness.Name)
		})
	}
}

// Every input yields a non-empty reply and a known next state.
func TestTransitionIsTotal(t *testing.T) {
	bodies := []string{"", " ", "Hello", "hi", "AB", "Ajala Ventures", "upload", "manual", "one by one", "??", strings.Repeat("x", 4096), "héllo wörld", "\x00"}
	mediaTypes := []string{"", "text/csv", "image/png", "not a mime type;;"}
	states := append([]State{"", "bogus"}, States...)

	for _, s := range states {
		for _, body := range bodies {
			for _, mt := range mediaTypes {
				for _, hasMedia := range []bool{false, true} {
					d := Transition(Input{State: s, Body: body, HasMedia: hasMedia, MediaType: mt})
					assert.NotEmpty(t, d.Reply, "state=%q body=%q", s, body)
					assert.True(t, d.Next.Valid(), "state=%q body=%q next=%q", s, body, d.Next)
				}
			}
		}
	}
}

// A body containing "hello" never provisions a business, whatever its length.
func TestGreetingPrecedence(t *testing.T) {
	for _, body := range []string{"hello", "Hello there, my shop", "HELLO KITTY STORE", "Othello Books Ltd"} {
		d := Transition(Input{State: StateAwaitingBusinessName, Body: body})
		assert.Nil(t, d.CreateBusiness, body)
		assert.Equal(t, StateInitial, d.Next, body)
	}
}

// Names that open with other greeting words are still names.
func TestNamesStartingWithGreetingWordsAreAccepted(t *testing.T) {
	for _, name := range []string{"Hi-Tech Solutions", "Hey Jude Records", "Howdy Farms", "Good Morning Bakery"} {
		d := Transition(Input{State: StateAwaitingBusinessName, Body: name})
		assert.Equal(t, StateProductsPrompt, d.Next, name)
		if assert.NotNil(t, d.CreateBusiness, name) {
			assert.Equal(t, name, d.CreateBusiness.Name)
		}
	}
}

func TestCreateBusinessOnlyFromNamingState(t *testing.T) {
	for _, s := range States {
		if s == StateAwaitingBusinessName {
			continue
		}
		d := Transition(Input{State: s, Body: "Ajala Ventures"})
		assert.Nil(t, d.CreateBusiness, s)
	}
}

func TestFullOnboardingScenario(t *testing.T) {
	state := StateInitial
	steps := []struct {
		in   Input
		want State
	}{
		{Input{Body: "Hello"}, StateAwaitingBusinessName},
		{Input{Body: "Ajala Ventures"}, StateProductsPrompt},
		{Input{Body: "upload"}, StateAwaitingProductUpload},
		{Input{HasMedia: true, MediaType: "text/csv"}, StateComplete},
		{Input{Body: "thanks"}, StateInitial},
	}
	for i, step := range steps {
		step.in.State = state
		d := Transition(step.in)
		require.Equal(t, step.want, d.Next, "step %d", i)
		state = d.Next
	}
}

func TestNameConfirmedMentionsName(t *testing.T) {
	reply := NameConfirmed("Ajala Ventures")
	assert.Contains(t, reply, "'Ajala Ventures' is all set up")
	assert.Contains(t, reply, "1. Upload a spreadsheet with your products")
}
