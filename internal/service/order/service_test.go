package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sezikua/TruckTyres-GE/internal/model"
	"github.com/sezikua/TruckTyres-GE/internal/service/order/mocks"
)

const testTimeout = 5 * time.Second

func TestServiceSubmit(t *testing.T) {
	t.Parallel()

	t.Run("valid order is rendered and delivered", func(t *testing.T) {
		t.Parallel()

		var sent string
		sender := mocks.NewMockMessageSender(t)
		sender.
			On("Send", mock.Anything, mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) {
				sent = args.String(1)
			}).
			Return(nil).
			Once()

		svc := NewOrderService(sender, testTimeout)

		receipt, err := svc.Submit(context.Background(), validFullOrder())
		require.NoError(t, err)
		require.NotNil(t, receipt)

		assert.NotEqual(t, [16]byte{}, [16]byte(receipt.Reference))
		assert.Contains(t, sent, receipt.Reference.String())
		assert.Contains(t, sent, "Олег")
		assert.Contains(t, sent, "CEAT Farmax")
	})

	t.Run("invalid order never reaches the sender", func(t *testing.T) {
		t.Parallel()

		sender := mocks.NewMockMessageSender(t)

		svc := NewOrderService(sender, testTimeout)

		ord := validFullOrder()
		ord.LastName = ""

		receipt, err := svc.Submit(context.Background(), ord)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Nil(t, receipt)

		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("delivery failure passes through", func(t *testing.T) {
		t.Parallel()

		sender := mocks.NewMockMessageSender(t)
		sender.
			On("Send", mock.Anything, mock.AnythingOfType("string")).
			Return(&model.DeliveryError{Diagnostic: "chat not found"}).
			Once()

		svc := NewOrderService(sender, testTimeout)

		receipt, err := svc.Submit(context.Background(), validQuickOrder())
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrDeliveryFailed)
		assert.Contains(t, err.Error(), "chat not found")
		assert.Nil(t, receipt)
	})

	t.Run("each submission gets a distinct reference", func(t *testing.T) {
		t.Parallel()

		sender := mocks.NewMockMessageSender(t)
		sender.
			On("Send", mock.Anything, mock.AnythingOfType("string")).
			Return(nil).
			Twice()

		svc := NewOrderService(sender, testTimeout)

		first, err := svc.Submit(context.Background(), validQuickOrder())
		require.NoError(t, err)
		second, err := svc.Submit(context.Background(), validQuickOrder())
		require.NoError(t, err)

		assert.NotEqual(t, first.Reference, second.Reference)
	})
}

func TestServiceContact(t *testing.T) {
	t.Parallel()

	t.Run("valid request is delivered", func(t *testing.T) {
		t.Parallel()

		var sent string
		sender := mocks.NewMockMessageSender(t)
		sender.
			On("Send", mock.Anything, mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) {
				sent = args.String(1)
			}).
			Return(nil).
			Once()

		svc := NewOrderService(sender, testTimeout)

		err := svc.Contact(context.Background(), model.ContactRequest{
			Name:    "Олег",
			Phone:   "+380671234567",
			Message: "Чи є в наявності 710/70R42?",
		})
		require.NoError(t, err)

		assert.Contains(t, sent, "Олег")
		assert.Contains(t, sent, "710/70R42")
	})

	t.Run("missing name is rejected before delivery", func(t *testing.T) {
		t.Parallel()

		sender := mocks.NewMockMessageSender(t)

		svc := NewOrderService(sender, testTimeout)

		err := svc.Contact(context.Background(), model.ContactRequest{Phone: "+380671234567"})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)

		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestServiceSubscribe(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		email   string
		wantErr bool
	}

	tests := []testCase{
		{name: "valid email", email: "oleh@example.com"},
		{name: "surrounding whitespace is trimmed", email: "  oleh@example.com "},
		{name: "empty email", email: "   ", wantErr: true},
		{name: "malformed email", email: "oleh@example", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender := mocks.NewMockMessageSender(t)
			if !tt.wantErr {
				sender.
					On("Send", mock.Anything, mock.MatchedBy(func(text string) bool {
						return strings.Contains(text, strings.TrimSpace(tt.email))
					})).
					Return(nil).
					Once()
			}

			svc := NewOrderService(sender, testTimeout)

			err := svc.Subscribe(context.Background(), tt.email)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
		})
	}
}
