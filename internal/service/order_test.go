package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wedloft/site-service/internal/entities"
	"github.com/wedloft/site-service/internal/service"
	mocks "github.com/wedloft/site-service/internal/service/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func completeDetails() *entities.WeddingDetails {
	return &entities.WeddingDetails{
		CoupleNames: "Emma & Lucas",
		WeddingDate: "2027-06-22",
		Venue:       "Opera Castle",
	}
}

func TestOrderService_Login(t *testing.T) {
	validOrder := entities.Order{ID: 1, AccessCode: "DEMO123", Status: entities.StatusPending}

	testCases := []struct {
		name         string
		accessCode   string
		mockBehavior func(store *mocks.MockOrderStore)
		wantErr      error
		want         entities.Order
	}{
		{
			name:       "success",
			accessCode: "DEMO123",
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().
					GetByAccessCode(mock.Anything, "DEMO123").
					Return(validOrder, nil).Once()
			},
			want: validOrder,
		},
		{
			name:       "unknown code",
			accessCode: "NOPE",
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().
					GetByAccessCode(mock.Anything, "NOPE").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrInvalidAccessCode,
		},
		{
			// любая ошибка стора выглядит так же, как неверный код
			name:       "store failure is opaque",
			accessCode: "DEMO123",
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().
					GetByAccessCode(mock.Anything, "DEMO123").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantErr: entities.ErrInvalidAccessCode,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockOrderStore(t)
			gen := mocks.NewMockContentGenerator(t)
			tc.mockBehavior(store)

			svc := service.NewOrderService(newTestLogger(), store, gen)

			got, err := svc.Login(context.Background(), tc.accessCode)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_UpdateOrder(t *testing.T) {
	t.Run("status and content are stripped from client patches", func(t *testing.T) {
		store := mocks.NewMockOrderStore(t)
		gen := mocks.NewMockContentGenerator(t)

		completed := entities.StatusCompleted
		template := entities.TemplateBotanical
		dirty := entities.OrderPatch{
			Template:         &template,
			Status:           &completed,
			GeneratedContent: &entities.GeneratedContent{WelcomeMessage: "forged"},
		}

		store.EXPECT().
			Update(mock.Anything, 1, mock.Anything).
			Run(func(_ context.Context, _ int, patch entities.OrderPatch) {
				assert.Nil(t, patch.Status)
				assert.Nil(t, patch.GeneratedContent)
				assert.Equal(t, &template, patch.Template)
			}).
			Return(entities.Order{ID: 1, Template: template}, nil).Once()

		svc := service.NewOrderService(newTestLogger(), store, gen)

		got, err := svc.UpdateOrder(context.Background(), 1, dirty)
		require.NoError(t, err)
		assert.Equal(t, template, got.Template)
	})

	t.Run("not found propagates", func(t *testing.T) {
		store := mocks.NewMockOrderStore(t)
		gen := mocks.NewMockContentGenerator(t)

		store.EXPECT().
			Update(mock.Anything, 42, mock.Anything).
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		svc := service.NewOrderService(newTestLogger(), store, gen)

		_, err := svc.UpdateOrder(context.Background(), 42, entities.OrderPatch{})
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderService_CreateOrder(t *testing.T) {
	draft := entities.OrderDraft{EtsyOrderID: "ETSY-1", AccessCode: "CODE1234"}

	t.Run("retry works (first attempt fails, second succeeds)", func(t *testing.T) {
		store := mocks.NewMockOrderStore(t)
		gen := mocks.NewMockContentGenerator(t)

		store.EXPECT().
			Create(mock.Anything, draft).
			Once().Return(entities.Order{}, errors.New("temporary error"))
		store.EXPECT().
			Create(mock.Anything, draft).
			Once().Return(entities.Order{ID: 1, EtsyOrderID: "ETSY-1"}, nil)

		svc := service.NewOrderService(newTestLogger(), store, gen)

		got, err := svc.CreateOrder(context.Background(), draft)
		require.NoError(t, err)
		assert.Equal(t, 1, got.ID)
	})

	t.Run("duplicate aborts without retry", func(t *testing.T) {
		store := mocks.NewMockOrderStore(t)
		gen := mocks.NewMockContentGenerator(t)

		store.EXPECT().
			Create(mock.Anything, draft).
			Once().Return(entities.Order{}, entities.ErrOrderExists)

		svc := service.NewOrderService(newTestLogger(), store, gen)

		_, err := svc.CreateOrder(context.Background(), draft)
		assert.ErrorIs(t, err, entities.ErrOrderExists)
	})
}

func TestOrderService_GenerateContent(t *testing.T) {
	content := entities.GeneratedContent{
		WelcomeMessage: "The Beginning of Forever",
		OurStory:       "Two paragraphs.",
		VenueDetails:   "A castle.",
		RSVPMessage:    "Please reply soon.",
		SEOTitle:       "Emma & Lucas Wedding",
		SEODescription: "Join us.",
		SchemaMarkup:   `{"@type":"Event"}`,
		AgendaIntro:    "The day ahead.",
		DetailsIntro:   "Good to know.",
		ClosingMessage: "Thank you.",
	}

	type MockBehavior func(store *mocks.MockOrderStore, gen *mocks.MockContentGenerator)

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
		wantStatus   entities.Status
	}{
		{
			name: "success persists content and completed status in one update",
			mockBehavior: func(store *mocks.MockOrderStore, gen *mocks.MockContentGenerator) {
				store.EXPECT().
					GetByID(mock.Anything, 1).
					Return(entities.Order{ID: 1, Template: entities.TemplateSageGreen, WeddingDetails: completeDetails()}, nil).Once()
				gen.EXPECT().
					Generate(mock.Anything, mock.Anything).
					Return(content, nil).Once()
				store.EXPECT().
					Update(mock.Anything, 1, mock.Anything).
					Run(func(_ context.Context, _ int, patch entities.OrderPatch) {
						require.NotNil(t, patch.Status)
						assert.Equal(t, entities.StatusCompleted, *patch.Status)
						require.NotNil(t, patch.GeneratedContent)
						assert.Equal(t, content, *patch.GeneratedContent)
					}).
					Return(entities.Order{ID: 1, Status: entities.StatusCompleted, GeneratedContent: &content}, nil).Once()
			},
			wantStatus: entities.StatusCompleted,
		},
		{
			name: "order not found",
			mockBehavior: func(store *mocks.MockOrderStore, _ *mocks.MockContentGenerator) {
				store.EXPECT().
					GetByID(mock.Anything, 1).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "no details at all",
			mockBehavior: func(store *mocks.MockOrderStore, _ *mocks.MockContentGenerator) {
				store.EXPECT().
					GetByID(mock.Anything, 1).
					Return(entities.Order{ID: 1}, nil).Once()
			},
			wantErr: entities.ErrDetailsMissing,
		},
		{
			name: "details incomplete",
			mockBehavior: func(store *mocks.MockOrderStore, _ *mocks.MockContentGenerator) {
				store.EXPECT().
					GetByID(mock.Anything, 1).
					Return(entities.Order{ID: 1, WeddingDetails: &entities.WeddingDetails{CoupleNames: "Emma & Lucas"}}, nil).Once()
			},
			wantErr: entities.ErrDetailsMissing,
		},
		{
			// при ошибке провайдера заказ не трогаем
			name: "provider failure leaves order untouched",
			mockBehavior: func(store *mocks.MockOrderStore, gen *mocks.MockContentGenerator) {
				store.EXPECT().
					GetByID(mock.Anything, 1).
					Return(entities.Order{ID: 1, WeddingDetails: completeDetails()}, nil).Once()
				gen.EXPECT().
					Generate(mock.Anything, mock.Anything).
					Return(entities.GeneratedContent{}, errors.New("rate limited")).Once()
			},
			wantErr: entities.ErrGenerationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockOrderStore(t)
			gen := mocks.NewMockContentGenerator(t)
			tc.mockBehavior(store, gen)

			svc := service.NewOrderService(newTestLogger(), store, gen)

			got, err := svc.GenerateContent(context.Background(), 1)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.Status)
			require.NotNil(t, got.GeneratedContent)
			assert.Equal(t, content, *got.GeneratedContent)
		})
	}
}

func TestOrderService_GenerateContent_PromptCarriesDetails(t *testing.T) {
	store := mocks.NewMockOrderStore(t)
	gen := mocks.NewMockContentGenerator(t)

	order := entities.Order{ID: 1, Template: entities.TemplateOldMoney, WeddingDetails: completeDetails()}
	store.EXPECT().GetByID(mock.Anything, 1).Return(order, nil).Once()

	var prompt string
	gen.EXPECT().
		Generate(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p string) { prompt = p }).
		Return(entities.GeneratedContent{WelcomeMessage: "hi"}, nil).Once()
	store.EXPECT().
		Update(mock.Anything, 1, mock.Anything).
		Return(order, nil).Once()

	svc := service.NewOrderService(newTestLogger(), store, gen)

	_, err := svc.GenerateContent(context.Background(), 1)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Emma & Lucas")
	assert.Contains(t, prompt, "Opera Castle")
	assert.Contains(t, prompt, "Classic, Formal, Sophisticated")
}
