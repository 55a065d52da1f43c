package models

import "time"

// TranslationNote is one saved translation in a user's notebook.
type TranslationNote struct {
	ID             string
	UserID         string
	SourceText     string
	TranslatedText string
	SourceLang     string
	TargetLang     string
	CreatedAt      time.Time
}
