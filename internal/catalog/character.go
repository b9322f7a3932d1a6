package catalog

import "strings"

// Character is a row of the characters table.
type Character struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	ArabicName  string `json:"arabic_name"`
	VoiceActor  string `json:"voice_actor"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

const (
	noArabicNameLabel = "No Arabic name"
	unassignedLabel   = "Unassigned"
)

// SecondaryLabel returns the Arabic name, or a fixed label when absent.
func (c Character) SecondaryLabel() string {
	if c.ArabicName == "" {
		return noArabicNameLabel
	}
	return c.ArabicName
}

// VoiceActorLabel returns the voice actor, or "Unassigned".
func (c Character) VoiceActorLabel() string {
	if c.VoiceActor == "" {
		return unassignedLabel
	}
	return c.VoiceActor
}

// HasImage reports whether the character has a portrait URL.
func (c Character) HasImage() bool {
	return c.ImageURL != ""
}

// Matches reports whether search matches the name or the Arabic name,
// case-insensitively. An empty search matches every character.
func (c Character) Matches(search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(c.Name), needle) {
		return true
	}
	return c.ArabicName != "" && strings.Contains(strings.ToLower(c.ArabicName), needle)
}

// FilterCharacters returns the characters matching search in their original
// order. The input slice is never modified.
func FilterCharacters(chars []Character, search string) []Character {
	out := make([]Character, 0, len(chars))
	for _, c := range chars {
		if c.Matches(search) {
			out = append(out, c)
		}
	}
	return out
}

// FallbackCharacters returns the built-in sample roster shown when the remote
// store has no usable data. Each call returns a fresh slice.
func FallbackCharacters() []Character {
	return []Character{
		{
			ID:          "1",
			Name:        "John Doe",
			ArabicName:  "John",
			VoiceActor:  "Ahmed",
			Description: "The main character, 30s, always angry.",
		},
		{
			ID:          "2",
			Name:        "Sarah Smith",
			ArabicName:  "Sarah",
			VoiceActor:  "Layla",
			Description: "Doctor, calm voice.",
		},
	}
}
