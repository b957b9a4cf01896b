package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	converter "github.com/sezikua/TruckTyres-GE/internal/converter/telegram"
	"github.com/sezikua/TruckTyres-GE/internal/logger"
	"github.com/sezikua/TruckTyres-GE/internal/model"
)

// MessageSender delivers one formatted message to the messaging
// endpoint. Delivery failure is reported as a model.DeliveryError,
// distinct from validation failure.
type MessageSender interface {
	Send(ctx context.Context, text string) error
}

type service struct {
	sender      MessageSender
	sendTimeout time.Duration
}

func NewOrderService(sender MessageSender, sendTimeout time.Duration) *service {
	return &service{sender: sender, sendTimeout: sendTimeout}
}

// Submit validates the payload, renders the notification and delivers
// it. The caller owns any retry policy; a resend risks duplicate
// delivery.
func (svc *service) Submit(ctx context.Context, ord model.Order) (*model.OrderReceipt, error) {
	const op = "order.service.Submit"
	log := logger.With(
		logger.String("order_kind", string(ord.Kind)),
		logger.Int("items_count", len(ord.Items)),
	)

	ord, err := ValidateOrder(ord)
	if err != nil {
		log.Warn(ctx, "order rejected", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ref := uuid.New()
	text, err := converter.BuildOrderMessage(ord, ref)
	if err != nil {
		log.Error(ctx, "build order message", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.sendTimeout)
	defer cancel()

	if err := svc.sender.Send(ctx, text); err != nil {
		log.Error(ctx, "send order notification", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.OrderReceipt{Reference: ref}, nil
}

// Contact relays a contact-form message.
func (svc *service) Contact(ctx context.Context, req model.ContactRequest) error {
	const op = "order.service.Contact"
	log := logger.With(logger.String("name", req.Name))

	req, err := validateContact(req)
	if err != nil {
		log.Warn(ctx, "contact rejected", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	text, err := converter.BuildContactMessage(req)
	if err != nil {
		log.Error(ctx, "build contact message", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.sendTimeout)
	defer cancel()

	if err := svc.sender.Send(ctx, text); err != nil {
		log.Error(ctx, "send contact notification", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Subscribe relays a newsletter signup.
func (svc *service) Subscribe(ctx context.Context, email string) error {
	const op = "order.service.Subscribe"

	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%s: %w", op, model.NewFieldError("email", "required"))
	}
	if !ValidEmail(email) {
		return fmt.Errorf("%s: %w", op, model.NewFieldError("email", "invalid format"))
	}

	text, err := converter.BuildNewsletterMessage(email)
	if err != nil {
		logger.Error(ctx, "build newsletter message", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.sendTimeout)
	defer cancel()

	if err := svc.sender.Send(ctx, text); err != nil {
		logger.Error(ctx, "send newsletter notification", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func validateContact(req model.ContactRequest) (model.ContactRequest, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" {
		return model.ContactRequest{}, model.NewFieldError("name", "required")
	}
	if req.Phone == "" {
		return model.ContactRequest{}, model.NewFieldError("phone", "required")
	}
	if !ValidPhone(req.Phone) {
		return model.ContactRequest{}, model.NewFieldError("phone", "invalid format")
	}
	if req.Email != "" && !ValidEmail(req.Email) {
		return model.ContactRequest{}, model.NewFieldError("email", "invalid format")
	}

	return req, nil
}
