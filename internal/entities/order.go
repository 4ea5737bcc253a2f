package entities

import (
	"errors"
	"time"
)

// Status is the order lifecycle state. An order starts pending and becomes
// completed when content generation succeeds. There is no transition back.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Template identifies one of the five site themes a customer can pick.
type Template string

const (
	TemplateSageGreen  Template = "sage_green"
	TemplateOldMoney   Template = "old_money"
	TemplateMinimalist Template = "minimalist"
	TemplateLuxuryGold Template = "luxury_gold"
	TemplateBotanical  Template = "botanical"
)

// Templates lists every known theme identifier.
var Templates = []Template{
	TemplateSageGreen,
	TemplateOldMoney,
	TemplateMinimalist,
	TemplateLuxuryGold,
	TemplateBotanical,
}

func (t Template) Valid() bool {
	for _, known := range Templates {
		if t == known {
			return true
		}
	}
	return false
}

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderExists       = errors.New("order already exists")
	ErrInvalidAccessCode = errors.New("invalid access code")
	ErrDetailsMissing    = errors.New("wedding details missing")
	ErrGenerationFailed  = errors.New("content generation failed")
)

// Order is the single persistent entity: one customer's purchase and its
// accumulated customization state.
type Order struct {
	ID          int
	EtsyOrderID string
	AccessCode  string
	Status      Status

	// Template is empty until the customer picks a theme.
	Template Template

	// WeddingDetails is nil until the first details step is saved.
	WeddingDetails *WeddingDetails

	// GeneratedContent is nil until generation succeeds, and is fully
	// replaced on every successful regeneration.
	GeneratedContent *GeneratedContent

	// Domain is reserved for the custom-domain feature; nothing sets it yet.
	Domain string

	CreatedAt time.Time
}

// Clone returns a deep copy. The memory store hands out clones so callers
// cannot mutate stored state through shared pointers.
func (o Order) Clone() Order {
	if o.WeddingDetails != nil {
		d := o.WeddingDetails.Clone()
		o.WeddingDetails = &d
	}
	if o.GeneratedContent != nil {
		c := *o.GeneratedContent
		o.GeneratedContent = &c
	}
	return o
}

// OrderDraft carries the fields provisioning supplies when creating an order.
type OrderDraft struct {
	EtsyOrderID    string
	AccessCode     string
	Status         Status
	Template       Template
	WeddingDetails *WeddingDetails
}

// OrderPatch is a field-level partial update. Nil fields are left untouched.
type OrderPatch struct {
	Template         *Template
	WeddingDetails   *WeddingDetailsPatch
	GeneratedContent *GeneratedContent
	Status           *Status
}
