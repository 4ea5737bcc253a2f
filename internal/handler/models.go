package handler

import (
	"time"

	"github.com/wedloft/site-service/internal/entities"
)

// Order is the wire representation of an order. Field casing matches what
// the wizard frontend persists and reads back.
type Order struct {
	ID               int               `json:"id"`
	EtsyOrderID      string            `json:"etsyOrderId"`
	AccessCode       string            `json:"accessCode"`
	Status           string            `json:"status"`
	Template         string            `json:"template,omitempty"`
	WeddingDetails   *WeddingDetails   `json:"weddingDetails,omitempty"`
	GeneratedContent *GeneratedContent `json:"generatedContent,omitempty"`
	Domain           string            `json:"domain,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
}

type AgendaItem struct {
	Time  string `json:"time" validate:"required"`
	Event string `json:"event" validate:"required"`
}

type WeddingDetails struct {
	CoupleNames      string       `json:"coupleNames"`
	WeddingDate      string       `json:"weddingDate"`
	WeddingTime      string       `json:"weddingTime,omitempty"`
	Venue            string       `json:"venue"`
	VenueAddress     string       `json:"venueAddress,omitempty"`
	GoogleMapsURL    string       `json:"googleMapsUrl,omitempty"`
	DressCode        string       `json:"dressCode,omitempty"`
	LoveStory        string       `json:"loveStory,omitempty"`
	Transportation   string       `json:"transportation,omitempty"`
	Accommodation    string       `json:"accommodation,omitempty"`
	RegistryLinks    string       `json:"registryLinks,omitempty"`
	MusicLink        string       `json:"musicLink,omitempty"`
	RSVPDeadline     string       `json:"rsvpDeadline,omitempty"`
	Language         string       `json:"language,omitempty"`
	CustomColors     string       `json:"customColors,omitempty"`
	Agenda           []AgendaItem `json:"agenda,omitempty"`
	GuestMealOptions []string     `json:"guestMealOptions,omitempty"`
}

type GeneratedContent struct {
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

type LoginRequest struct {
	AccessCode string `json:"accessCode" validate:"required"`
}

// WeddingDetailsPatch carries a partial wedding-details update. Absent (or
// null) fields keep their stored value; present fields overwrite. The
// mandatory trio may not be blanked once set.
type WeddingDetailsPatch struct {
	CoupleNames      *string      `json:"coupleNames" validate:"omitempty,min=1"`
	WeddingDate      *string      `json:"weddingDate" validate:"omitempty,min=1"`
	WeddingTime      *string      `json:"weddingTime"`
	Venue            *string      `json:"venue" validate:"omitempty,min=1"`
	VenueAddress     *string      `json:"venueAddress"`
	GoogleMapsURL    *string      `json:"googleMapsUrl"`
	DressCode        *string      `json:"dressCode"`
	LoveStory        *string      `json:"loveStory"`
	Transportation   *string      `json:"transportation"`
	Accommodation    *string      `json:"accommodation"`
	RegistryLinks    *string      `json:"registryLinks"`
	MusicLink        *string      `json:"musicLink"`
	RSVPDeadline     *string      `json:"rsvpDeadline"`
	Language         *string      `json:"language"`
	CustomColors     *string      `json:"customColors"`
	Agenda           []AgendaItem `json:"agenda" validate:"omitempty,dive"`
	GuestMealOptions []string     `json:"guestMealOptions"`
}

type UpdateOrderRequest struct {
	Template       *string              `json:"template" validate:"omitempty,oneof=sage_green old_money minimalist luxury_gold botanical"`
	WeddingDetails *WeddingDetailsPatch `json:"weddingDetails"`
}

func OrderEntityToJSON(o entities.Order) Order {
	out := Order{
		ID:          o.ID,
		EtsyOrderID: o.EtsyOrderID,
		AccessCode:  o.AccessCode,
		Status:      string(o.Status),
		Template:    string(o.Template),
		Domain:      o.Domain,
		CreatedAt:   o.CreatedAt,
	}
	if o.WeddingDetails != nil {
		details := DetailsEntityToJSON(*o.WeddingDetails)
		out.WeddingDetails = &details
	}
	if o.GeneratedContent != nil {
		content := ContentEntityToJSON(*o.GeneratedContent)
		out.GeneratedContent = &content
	}
	return out
}

func DetailsEntityToJSON(d entities.WeddingDetails) WeddingDetails {
	out := WeddingDetails{
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
		out.Agenda = append(out.Agenda, AgendaItem{Time: item.Time, Event: item.Event})
	}
	return out
}

func ContentEntityToJSON(c entities.GeneratedContent) GeneratedContent {
	return GeneratedContent{
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

// UpdateRequestToPatch converts a validated update request into the store
// patch shape.
func UpdateRequestToPatch(req UpdateOrderRequest) entities.OrderPatch {
	var patch entities.OrderPatch

	if req.Template != nil {
		template := entities.Template(*req.Template)
		patch.Template = &template
	}

	if req.WeddingDetails != nil {
		src := req.WeddingDetails
		details := entities.WeddingDetailsPatch{
			CoupleNames:      src.CoupleNames,
			WeddingDate:      src.WeddingDate,
			WeddingTime:      src.WeddingTime,
			Venue:            src.Venue,
			VenueAddress:     src.VenueAddress,
			GoogleMapsURL:    src.GoogleMapsURL,
			DressCode:        src.DressCode,
			LoveStory:        src.LoveStory,
			Transportation:   src.Transportation,
			Accommodation:    src.Accommodation,
			RegistryLinks:    src.RegistryLinks,
			MusicLink:        src.MusicLink,
			RSVPDeadline:     src.RSVPDeadline,
			Language:         src.Language,
			CustomColors:     src.CustomColors,
			GuestMealOptions: src.GuestMealOptions,
		}
		if src.Agenda != nil {
			details.Agenda = make([]entities.AgendaItem, 0, len(src.Agenda))
			for _, item := range src.Agenda {
				details.Agenda = append(details.Agenda, entities.AgendaItem{Time: item.Time, Event: item.Event})
			}
		}
		patch.WeddingDetails = &details
	}

	return patch
}
