package entities

// AgendaItem is one entry of the wedding day schedule.
type AgendaItem struct {
	Time  string
	Event string
}

// WeddingDetails holds the customer-entered facts about the wedding.
// CoupleNames, WeddingDate and Venue are mandatory before generation;
// everything else is optional.
type WeddingDetails struct {
	CoupleNames   string
	WeddingDate   string
	WeddingTime   string
	Venue         string
	VenueAddress  string
	GoogleMapsURL string

	DressCode      string
	LoveStory      string
	Transportation string
	Accommodation  string
	RegistryLinks  string
	MusicLink      string
	RSVPDeadline   string
	Language       string
	CustomColors   string

	Agenda           []AgendaItem
	GuestMealOptions []string
}

// Complete reports whether the mandatory fields needed for content
// generation have been filled in.
func (d WeddingDetails) Complete() bool {
	return d.CoupleNames != "" && d.WeddingDate != "" && d.Venue != ""
}

// WeddingDetailsPatch is a partial update of WeddingDetails. Nil scalar
// fields keep the prior value; set fields overwrite, including with an empty
// string. Slices overwrite whenever non-nil, so an empty list clears.
type WeddingDetailsPatch struct {
	CoupleNames   *string
	WeddingDate   *string
	WeddingTime   *string
	Venue         *string
	VenueAddress  *string
	GoogleMapsURL *string

	DressCode      *string
	LoveStory      *string
	Transportation *string
	Accommodation  *string
	RegistryLinks  *string
	MusicLink      *string
	RSVPDeadline   *string
	Language       *string
	CustomColors   *string

	Agenda           []AgendaItem
	GuestMealOptions []string
}

// Merge applies the patch on top of d and returns the result. Both store
// implementations use this so merge semantics cannot drift between them.
func (d WeddingDetails) Merge(p WeddingDetailsPatch) WeddingDetails {
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	apply(&d.CoupleNames, p.CoupleNames)
	apply(&d.WeddingDate, p.WeddingDate)
	apply(&d.WeddingTime, p.WeddingTime)
	apply(&d.Venue, p.Venue)
	apply(&d.VenueAddress, p.VenueAddress)
	apply(&d.GoogleMapsURL, p.GoogleMapsURL)
	apply(&d.DressCode, p.DressCode)
	apply(&d.LoveStory, p.LoveStory)
	apply(&d.Transportation, p.Transportation)
	apply(&d.Accommodation, p.Accommodation)
	apply(&d.RegistryLinks, p.RegistryLinks)
	apply(&d.MusicLink, p.MusicLink)
	apply(&d.RSVPDeadline, p.RSVPDeadline)
	apply(&d.Language, p.Language)
	apply(&d.CustomColors, p.CustomColors)

	if p.Agenda != nil {
		d.Agenda = append([]AgendaItem(nil), p.Agenda...)
	}
	if p.GuestMealOptions != nil {
		d.GuestMealOptions = append([]string(nil), p.GuestMealOptions...)
	}

	return d
}

// Clone returns a deep copy so stored state cannot alias caller slices.
func (d WeddingDetails) Clone() WeddingDetails {
	if d.Agenda != nil {
		d.Agenda = append([]AgendaItem(nil), d.Agenda...)
	}
	if d.GuestMealOptions != nil {
		d.GuestMealOptions = append([]string(nil), d.GuestMealOptions...)
	}
	return d
}
