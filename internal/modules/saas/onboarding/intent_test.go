package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGreeting(t *testing.T) {
	greetings := []string{"hello", "Hello!", "say HELLO", "hello there"}
	for _, g := range greetings {
		assert.True(t, IsGreeting(g), g)
	}

	names := []string{"Chic Boutique", "Sushi Place", "Ajala Ventures", "Hi-Tech Solutions", "Hey Jude Records", "Howdy Farms", "Good Morning Bakery", ""}
	for _, n := range names {
		assert.False(t, IsGreeting(n), n)
	}

	// "hello" matches as a substring, even inside a word
	assert.True(t, IsGreeting("Othello Books Ltd"))
}

func TestIsBusinessName(t *testing.T) {
	assert.True(t, IsBusinessName("Abc"))
	assert.True(t, IsBusinessName(" Ajala Ventures "))
	assert.False(t, IsBusinessName("AB"))
	assert.False(t, IsBusinessName("  AB  "))
	assert.False(t, IsBusinessName("Hello"))
}

func TestIsCSV(t *testing.T) {
	assert.True(t, IsCSV("text/csv"))
	assert.True(t, IsCSV("TEXT/CSV"))
	assert.True(t, IsCSV("text/csv; charset=utf-8"))
	assert.False(t, IsCSV("application/vnd.ms-excel"))
	assert.False(t, IsCSV("text/plain"))
	assert.False(t, IsCSV(""))
	assert.False(t, IsCSV(";;"))
}

func TestIntentKeywords(t *testing.T) {
	assert.True(t, WantsUpload("Upload"))
	assert.True(t, WantsUpload("the spreadsheet one"))
	assert.False(t, WantsUpload("manual"))
	assert.True(t, WantsManual("MANUAL"))
	assert.True(t, WantsManual("one by one please"))
	assert.False(t, WantsManual("1"))
	assert.True(t, IsStartCommand(" hello "))
	assert.False(t, IsStartCommand("hello there"))
}

func TestStateValid(t *testing.T) {
	for _, s := range States {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, State("").Valid())
	assert.False(t, State("INITIAL").Valid())
}
