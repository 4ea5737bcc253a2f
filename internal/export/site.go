// Package export renders an order into a downloadable static site bundle.
// It is a pure read-side transformation: absent fields render as empty
// sections, nothing here validates or mutates the order.
package export

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/wedloft/site-service/internal/entities"
)

const bundleFilename = "index.html"

type page struct {
	Theme Theme

	CoupleNames   string
	WeddingDate   string
	WeddingTime   string
	Venue         string
	VenueAddress  string
	GoogleMapsURL string
	DressCode     string
	Agenda        []entities.AgendaItem
	MealOptions   []string
	RSVPDeadline  string
	RegistryLinks string
	MusicLink     string

	WelcomeMessage string
	OurStory       string
	VenueDetails   string
	RSVPMessage    string
	SEOTitle       string
	SEODescription string
	AgendaIntro    string
	DetailsIntro   string
	ClosingMessage string

	// SchemaMarkup is emitted verbatim inside a ld+json script tag and is
	// only set when the generated markup is valid JSON.
	SchemaMarkup template.JS
}

var siteTemplate = template.Must(template.New("site").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{if .SEOTitle}}{{.SEOTitle}}{{else}}{{.CoupleNames}}{{end}}</title>
<meta name="description" content="{{.SEODescription}}">
{{if .SchemaMarkup}}<script type="application/ld+json">{{.SchemaMarkup}}</script>
{{end}}<style>
body { margin: 0; background: {{.Theme.Background}}; color: {{.Theme.Ink}}; font-family: {{.Theme.BodyFont}}; }
h1, h2 { font-family: {{.Theme.DisplayFont}}; font-weight: 500; }
a { color: {{.Theme.Accent}}; }
main { max-width: 42rem; margin: 0 auto; padding: 4rem 1.5rem; }
section { margin-bottom: 3rem; text-align: center; }
.accent { color: {{.Theme.Accent}}; }
</style>
</head>
<body>
<main>
<section>
<h1>{{.CoupleNames}}</h1>
<p class="accent">{{.WeddingDate}}{{if .WeddingTime}} &middot; {{.WeddingTime}}{{end}}</p>
<p>{{.WelcomeMessage}}</p>
</section>
<section>
<h2>Our Story</h2>
<p>{{.OurStory}}</p>
</section>
<section>
<h2>{{.Venue}}</h2>
<p>{{.VenueAddress}}</p>
<p>{{.VenueDetails}}</p>
{{if .GoogleMapsURL}}<p><a href="{{.GoogleMapsURL}}">View on map</a></p>{{end}}
</section>
{{if .Agenda}}<section>
<h2>Schedule</h2>
<p>{{.AgendaIntro}}</p>
{{range .Agenda}}<p><span class="accent">{{.Time}}</span> {{.Event}}</p>
{{end}}</section>
{{end}}{{if or .DressCode .MealOptions}}<section>
<h2>Good to Know</h2>
<p>{{.DetailsIntro}}</p>
{{if .DressCode}}<p>Dress code: {{.DressCode}}</p>{{end}}
{{range .MealOptions}}<p>{{.}}</p>
{{end}}</section>
{{end}}<section>
<h2>RSVP</h2>
<p>{{.RSVPMessage}}</p>
{{if .RSVPDeadline}}<p>Please reply by {{.RSVPDeadline}}.</p>{{end}}
</section>
{{if or .RegistryLinks .MusicLink}}<section>
{{if .RegistryLinks}}<p><a href="{{.RegistryLinks}}">Registry</a></p>{{end}}
{{if .MusicLink}}<p><a href="{{.MusicLink}}">Our playlist</a></p>{{end}}
</section>
{{end}}<section>
<p>{{.ClosingMessage}}</p>
</section>
</main>
</body>
</html>
`))

// Bundle renders the order into a zip archive holding the static site.
func Bundle(order entities.Order) ([]byte, error) {
	var html bytes.Buffer
	if err := siteTemplate.Execute(&html, pageFromOrder(order)); err != nil {
		return nil, fmt.Errorf("failed to render site: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	f, err := zw.Create(bundleFilename)
	if err != nil {
		return nil, fmt.Errorf("failed to create bundle entry: %w", err)
	}
	if _, err := f.Write(html.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to write bundle entry: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize bundle: %w", err)
	}

	return buf.Bytes(), nil
}

func pageFromOrder(order entities.Order) page {
	p := page{Theme: ThemeFor(order.Template)}

	if d := order.WeddingDetails; d != nil {
		p.CoupleNames = d.CoupleNames
		p.WeddingDate = d.WeddingDate
		p.WeddingTime = d.WeddingTime
		p.Venue = d.Venue
		p.VenueAddress = d.VenueAddress
		p.GoogleMapsURL = d.GoogleMapsURL
		p.DressCode = d.DressCode
		p.Agenda = d.Agenda
		p.MealOptions = d.GuestMealOptions
		p.RSVPDeadline = d.RSVPDeadline
		p.RegistryLinks = d.RegistryLinks
		p.MusicLink = d.MusicLink
	}

	if c := order.GeneratedContent; c != nil {
		p.WelcomeMessage = c.WelcomeMessage
		p.OurStory = c.OurStory
		p.VenueDetails = c.VenueDetails
		p.RSVPMessage = c.RSVPMessage
		p.SEOTitle = c.SEOTitle
		p.SEODescription = c.SEODescription
		p.AgendaIntro = c.AgendaIntro
		p.DetailsIntro = c.DetailsIntro
		p.ClosingMessage = c.ClosingMessage

		if json.Valid([]byte(c.SchemaMarkup)) {
			p.SchemaMarkup = template.JS(c.SchemaMarkup)
		}
	}

	return p
}
