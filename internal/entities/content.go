package entities

// GeneratedContent is the copy produced by the generation pipeline. It is
// derived data: never hand-edited, fully replaced on regeneration.
type GeneratedContent struct {
	WelcomeMessage string
	OurStory       string
	VenueDetails   string
	RSVPMessage    string
	SEOTitle       string
	SEODescription string
	SchemaMarkup   string
	AgendaIntro    string
	DetailsIntro   string
	ClosingMessage string
}
