package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wedloft/site-service/internal/entities"
	"github.com/wedloft/site-service/internal/repo"
	"github.com/wedloft/site-service/internal/service"
	mocks "github.com/wedloft/site-service/internal/service/mocks"
)

// TestOrderService_DemoFlow walks the whole customer journey against the real
// in-memory store: provision, log in, pick a theme, fill details in two steps,
// generate, and check the final state.
func TestOrderService_DemoFlow(t *testing.T) {
	ctx := context.Background()

	gen := mocks.NewMockContentGenerator(t)
	content := entities.GeneratedContent{
		WelcomeMessage: "The Beginning of Forever",
		OurStory:       "They met in Paris.",
		VenueDetails:   "A castle above the city.",
		RSVPMessage:    "Reply by spring.",
		SEOTitle:       "Emma & Lucas",
		SEODescription: "Wedding of Emma and Lucas.",
		SchemaMarkup:   `{"@context":"https://schema.org","@type":"Event"}`,
		AgendaIntro:    "Here is the plan.",
		DetailsIntro:   "A few practical notes.",
		ClosingMessage: "With love.",
	}
	gen.EXPECT().Generate(mock.Anything, mock.Anything).Return(content, nil).Once()

	svc := service.NewOrderService(newTestLogger(), repo.NewMemoryStore(), gen)

	created, err := svc.CreateOrder(ctx, entities.OrderDraft{
		EtsyOrderID: "DEMO-001",
		AccessCode:  "DEMO123",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPending, created.Status)

	// генерация до заполнения деталей должна падать
	_, err = svc.GenerateContent(ctx, created.ID)
	assert.ErrorIs(t, err, entities.ErrDetailsMissing)

	order, err := svc.Login(ctx, "DEMO123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, order.ID)

	_, err = svc.Login(ctx, "WRONG")
	assert.ErrorIs(t, err, entities.ErrInvalidAccessCode)

	template := entities.TemplateSageGreen
	_, err = svc.UpdateOrder(ctx, order.ID, entities.OrderPatch{Template: &template})
	require.NoError(t, err)

	names := "Emma & Lucas"
	date := "2027-06-22"
	venue := "Opera Castle"
	_, err = svc.UpdateOrder(ctx, order.ID, entities.OrderPatch{
		WeddingDetails: &entities.WeddingDetailsPatch{
			CoupleNames: &names,
			WeddingDate: &date,
		},
	})
	require.NoError(t, err)

	// второй шаг мастера не должен затирать первый
	updated, err := svc.UpdateOrder(ctx, order.ID, entities.OrderPatch{
		WeddingDetails: &entities.WeddingDetailsPatch{Venue: &venue},
	})
	require.NoError(t, err)
	require.NotNil(t, updated.WeddingDetails)
	assert.Equal(t, names, updated.WeddingDetails.CoupleNames)
	assert.Equal(t, date, updated.WeddingDetails.WeddingDate)
	assert.Equal(t, venue, updated.WeddingDetails.Venue)
	assert.Equal(t, entities.StatusPending, updated.Status)

	generated, err := svc.GenerateContent(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCompleted, generated.Status)
	require.NotNil(t, generated.GeneratedContent)
	assert.Equal(t, content, *generated.GeneratedContent)

	// повторная покупка с тем же кодом отбрасывается
	_, err = svc.CreateOrder(ctx, entities.OrderDraft{EtsyOrderID: "DEMO-002", AccessCode: "DEMO123"})
	assert.ErrorIs(t, err, entities.ErrOrderExists)
}
