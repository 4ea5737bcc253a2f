package repo

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/wedloft/site-service/internal/entities"
)

type Order struct {
	ID               int                `db:"id"`
	EtsyOrderID      string             `db:"etsy_order_id"`
	AccessCode       string             `db:"access_code"`
	Status           string             `db:"status"`
	Template         sql.NullString     `db:"template"`
	WeddingDetails   types.NullJSONText `db:"wedding_details"`
	GeneratedContent types.NullJSONText `db:"generated_content"`
	Domain           sql.NullString     `db:"domain"`
	CreatedAt        time.Time          `db:"created_at"`
}

// jsonb documents keep the key casing the wizard frontend stores, so rows
// written by earlier deployments stay readable.
type weddingDetailsDoc struct {
	CoupleNames      string          `json:"coupleNames"`
	WeddingDate      string          `json:"weddingDate"`
	WeddingTime      string          `json:"weddingTime,omitempty"`
	Venue            string          `json:"venue"`
	VenueAddress     string          `json:"venueAddress,omitempty"`
	GoogleMapsURL    string          `json:"googleMapsUrl,omitempty"`
	DressCode        string          `json:"dressCode,omitempty"`
	LoveStory        string          `json:"loveStory,omitempty"`
	Transportation   string          `json:"transportation,omitempty"`
	Accommodation    string          `json:"accommodation,omitempty"`
	RegistryLinks    string          `json:"registryLinks,omitempty"`
	MusicLink        string          `json:"musicLink,omitempty"`
	RSVPDeadline     string          `json:"rsvpDeadline,omitempty"`
	Language         string          `json:"language,omitempty"`
	CustomColors     string          `json:"customColors,omitempty"`
	Agenda           []agendaItemDoc `json:"agenda,omitempty"`
	GuestMealOptions []string        `json:"guestMealOptions,omitempty"`
}

type agendaItemDoc struct {
	Time  string `json:"time"`
	Event string `json:"event"`
}

type generatedContentDoc struct {
	WelcomeMessage string `json:"welcomeMessage"`
	OurStory       string `json:"ourStory"`
	VenueDetails   string `json:"venueDetails"`
	RSVPMessage    string `json:"rsvpMessage"`
	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`
	SchemaMarkup   string `json:"schemaMarkup"`
	AgendaIntro    string `json:"agendaIntro"`
	DetailsIntro   string `json:"detailsIntro"`
	ClosingMessage string `json:"closingMessage"`
}

func detailsToDoc(d entities.WeddingDetails) weddingDetailsDoc {
	doc := weddingDetailsDoc{
		CoupleNames:      d.CoupleNames,
		WeddingDate:      d.WeddingDate,
		WeddingTime:      d.WeddingTime,
		Venue:            d.Venue,
		VenueAddress:     d.VenueAddress,
		GoogleMapsURL:    d.GoogleMapsURL,
		DressCode:        d.DressCode,
		LoveStory:        d.LoveStory,
		Transportation:   d.Transportation,
		Accommodation:    d.Accommodation,
		RegistryLinks:    d.RegistryLinks,
		MusicLink:        d.MusicLink,
		RSVPDeadline:     d.RSVPDeadline,
		Language:         d.Language,
		CustomColors:     d.CustomColors,
		GuestMealOptions: d.GuestMealOptions,
	}
	for _, item := range d.Agenda {
		doc.Agenda = append(doc.Agenda, agendaItemDoc{Time: item.Time, Event: item.Event})
	}
	return doc
}

func docToDetails(doc weddingDetailsDoc) entities.WeddingDetails {
	d := entities.WeddingDetails{
		CoupleNames:      doc.CoupleNames,
		WeddingDate:      doc.WeddingDate,
		WeddingTime:      doc.WeddingTime,
		Venue:            doc.Venue,
		VenueAddress:     doc.VenueAddress,
		GoogleMapsURL:    doc.GoogleMapsURL,
		DressCode:        doc.DressCode,
		LoveStory:        doc.LoveStory,
		Transportation:   doc.Transportation,
		Accommodation:    doc.Accommodation,
		RegistryLinks:    doc.RegistryLinks,
		MusicLink:        doc.MusicLink,
		RSVPDeadline:     doc.RSVPDeadline,
		Language:         doc.Language,
		CustomColors:     doc.CustomColors,
		GuestMealOptions: doc.GuestMealOptions,
	}
	for _, item := range doc.Agenda {
		d.Agenda = append(d.Agenda, entities.AgendaItem{Time: item.Time, Event: item.Event})
	}
	return d
}

func contentToDoc(c entities.GeneratedContent) generatedContentDoc {
	return generatedContentDoc{
		WelcomeMessage: c.WelcomeMessage,
		OurStory:       c.OurStory,
		VenueDetails:   c.VenueDetails,
		RSVPMessage:    c.RSVPMessage,
		SEOTitle:       c.SEOTitle,
		SEODescription: c.SEODescription,
		SchemaMarkup:   c.SchemaMarkup,
		AgendaIntro:    c.AgendaIntro,
		DetailsIntro:   c.DetailsIntro,
		ClosingMessage: c.ClosingMessage,
	}
}

func docToContent(doc generatedContentDoc) entities.GeneratedContent {
	return entities.GeneratedContent{
		WelcomeMessage: doc.WelcomeMessage,
		OurStory:       doc.OurStory,
		VenueDetails:   doc.VenueDetails,
		RSVPMessage:    doc.RSVPMessage,
		SEOTitle:       doc.SEOTitle,
		SEODescription: doc.SEODescription,
		SchemaMarkup:   doc.SchemaMarkup,
		AgendaIntro:    doc.AgendaIntro,
		DetailsIntro:   doc.DetailsIntro,
		ClosingMessage: doc.ClosingMessage,
	}
}

func marshalDetails(d *entities.WeddingDetails) (types.NullJSONText, error) {
	if d == nil {
		return types.NullJSONText{}, nil
	}
	raw, err := json.Marshal(detailsToDoc(*d))
	if err != nil {
		return types.NullJSONText{}, fmt.Errorf("marshal wedding details: %w", err)
	}
	return types.NullJSONText{JSONText: raw, Valid: true}, nil
}

func marshalContent(c *entities.GeneratedContent) (types.NullJSONText, error) {
	if c == nil {
		return types.NullJSONText{}, nil
	}
	raw, err := json.Marshal(contentToDoc(*c))
	if err != nil {
		return types.NullJSONText{}, fmt.Errorf("marshal generated content: %w", err)
	}
	return types.NullJSONText{JSONText: raw, Valid: true}, nil
}

func OrderToEntity(o Order) (entities.Order, error) {
	order := entities.Order{
		ID:          o.ID,
		EtsyOrderID: o.EtsyOrderID,
		AccessCode:  o.AccessCode,
		Status:      entities.Status(o.Status),
		Template:    entities.Template(nullStringToString(o.Template)),
		Domain:      nullStringToString(o.Domain),
		CreatedAt:   o.CreatedAt,
	}

	if o.WeddingDetails.Valid {
		var doc weddingDetailsDoc
		if err := json.Unmarshal(o.WeddingDetails.JSONText, &doc); err != nil {
			return entities.Order{}, fmt.Errorf("unmarshal wedding details: %w", err)
		}
		details := docToDetails(doc)
		order.WeddingDetails = &details
	}

	if o.GeneratedContent.Valid {
		var doc generatedContentDoc
		if err := json.Unmarshal(o.GeneratedContent.JSONText, &doc); err != nil {
			return entities.Order{}, fmt.Errorf("unmarshal generated content: %w", err)
		}
		content := docToContent(doc)
		order.GeneratedContent = &content
	}

	return order, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
