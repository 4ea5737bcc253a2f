package generation

import (
	"fmt"
	"strings"

	"github.com/wedloft/site-service/internal/entities"
)

const defaultTone = "Modern, Warm, Elegant"

// toneByTemplate maps every theme to the tone directive embedded in the
// prompt. The wording is copy policy, the fixed per-theme mapping is the
// contract.
var toneByTemplate = map[entities.Template]string{
	entities.TemplateSageGreen:  "Natural, Serene, Romantic",
	entities.TemplateOldMoney:   "Classic, Formal, Sophisticated",
	entities.TemplateMinimalist: "Clean, Understated, Sincere",
	entities.TemplateLuxuryGold: "Opulent, Glamorous, Refined",
	entities.TemplateBotanical:  "Fresh, Whimsical, Earthy",
}

// ToneFor returns the tone directive for a template, falling back to the
// default tone for an unknown or unset template.
func ToneFor(template entities.Template) string {
	if tone, ok := toneByTemplate[template]; ok {
		return tone
	}
	return defaultTone
}

// BuildPrompt renders the generation prompt from the order's details. The
// output is deterministic: the same details and template always produce the
// same prompt.
func BuildPrompt(template entities.Template, details entities.WeddingDetails) string {
	weddingTime := details.WeddingTime
	if weddingTime == "" {
		weddingTime = "TBA"
	}
	address := details.VenueAddress
	if address == "" {
		address = "Address TBA"
	}
	loveStory := details.LoveStory
	if loveStory == "" {
		loveStory = "Write a romantic intro about destiny and shared dreams."
	}

	var b strings.Builder
	b.WriteString("You are a professional wedding website copywriter. Generate content for a wedding website inspired by high-end vertical mobile invitations.\n")
	b.WriteString("Details:\n")
	fmt.Fprintf(&b, "- Couple: %s\n", details.CoupleNames)
	fmt.Fprintf(&b, "- Date: %s at %s\n", details.WeddingDate, weddingTime)
	fmt.Fprintf(&b, "- Venue: %s (%s)\n", details.Venue, address)
	fmt.Fprintf(&b, "- Love Story: %s\n", loveStory)
	fmt.Fprintf(&b, "- Tone: %s\n", ToneFor(template))
	b.WriteString("\nReturn ONLY a JSON object:\n")
	b.WriteString(`- welcomeMessage: Short, catchy (e.g., "The Beginning of Forever")` + "\n")
	b.WriteString("- ourStory: 2 short, beautiful paragraphs.\n")
	b.WriteString("- venueDetails: Descriptive blurb about the location.\n")
	b.WriteString("- rsvpMessage: Urgent but polite CTA.\n")
	b.WriteString("- seoTitle: Professional SEO title.\n")
	b.WriteString("- seoDescription: Elegant meta description.\n")
	b.WriteString("- schemaMarkup: Stringified JSON-LD WeddingEvent.\n")
	b.WriteString("- agendaIntro: Short line introducing the schedule.\n")
	b.WriteString("- detailsIntro: Short line introducing dress code and logistics.\n")
	b.WriteString("- closingMessage: A warm, emotional closing thank-you message.\n")

	return b.String()
}
