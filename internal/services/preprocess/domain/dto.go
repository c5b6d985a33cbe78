// Package domain holds DTOs for the preprocess http and service contracts
package domain

// MaxPosts bounds one /preprocess request
const MaxPosts = 500

// PostInput is one post to normalize
type PostInput struct {
	ID   string `json:"id" validate:"required,max=64" example:"1594364851118252035"`
	Text string `json:"text" validate:"required,max=10000" example:"Qué golazo!! #Qatar2022"`
	Lang string `json:"lang,omitempty" validate:"omitempty,langtag" example:"es"`
}

// PreprocessInput is the body of POST /preprocess
type PreprocessInput struct {
	Posts []PostInput       `json:"posts" validate:"required,min=1,max=500,dive"`
	Slang map[string]string `json:"slang,omitempty" validate:"omitempty,max=1000"`
	Mode  string            `json:"mode,omitempty" validate:"omitempty,oneof=lemma stem" example:"lemma"`
}

// PostResult is the normalized form of one post
type PostResult struct {
	ID         string   `json:"id"`
	Clean      []string `json:"clean"`
	Translated string   `json:"translated"`
}

// PreprocessOutput lists results in request order; empty posts are omitted
type PreprocessOutput struct {
	Results []PostResult `json:"results"`
}

// TextInput is the body of POST /clean and POST /phrases
type TextInput struct {
	Text string `json:"text" validate:"required,max=10000" example:"I'm sooo happy lol"`
	Lang string `json:"lang,omitempty" validate:"omitempty,langtag" example:"en"`
}

// CleanOutput is the cleaning stages applied to TextInput.Text
type CleanOutput struct {
	Clean string `json:"clean"`
}

// PhrasesOutput is TextInput.Text split into normalized sentences
type PhrasesOutput struct {
	Phrases []string `json:"phrases"`
}
