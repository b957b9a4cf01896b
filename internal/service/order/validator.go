package service

import (
	"regexp"
	"strings"

	"github.com/sezikua/TruckTyres-GE/internal/model"
)

var (
	// Loose format checks, matching what the storefront forms accept.
	phoneRE = regexp.MustCompile(`^\+?[0-9()-]{10,}$`)
	emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateOrder normalizes and validates an order payload. It returns
// the trimmed copy on success and a FieldError naming the offending
// field otherwise. Pure: it never touches the notification channel.
func ValidateOrder(ord model.Order) (model.Order, error) {
	switch ord.Kind {
	case model.OrderQuick, model.OrderFull:
	default:
		return model.Order{}, model.NewFieldError("type", "must be quick or full")
	}

	ord.FirstName = strings.TrimSpace(ord.FirstName)
	ord.LastName = strings.TrimSpace(ord.LastName)
	ord.Phone = strings.TrimSpace(ord.Phone)
	ord.Email = strings.TrimSpace(ord.Email)
	ord.Region = strings.TrimSpace(ord.Region)
	ord.City = strings.TrimSpace(ord.City)
	ord.CarrierWarehouse = strings.TrimSpace(ord.CarrierWarehouse)
	ord.Message = strings.TrimSpace(ord.Message)
	ord.Delivery = trimSet(ord.Delivery)

	if ord.FirstName == "" {
		return model.Order{}, model.NewFieldError("firstName", "required")
	}
	if ord.Phone == "" {
		return model.Order{}, model.NewFieldError("phone", "required")
	}
	if !ValidPhone(ord.Phone) {
		return model.Order{}, model.NewFieldError("phone", "invalid format")
	}
	if ord.Email != "" && !ValidEmail(ord.Email) {
		return model.Order{}, model.NewFieldError("email", "invalid format")
	}

	if ord.Kind == model.OrderFull {
		if ord.LastName == "" {
			return model.Order{}, model.NewFieldError("lastName", "required")
		}
		if ord.Region == "" {
			return model.Order{}, model.NewFieldError("region", "required")
		}
		if ord.City == "" {
			return model.Order{}, model.NewFieldError("city", "required")
		}
		if len(ord.Delivery) == 0 {
			return model.Order{}, model.NewFieldError("delivery", "required")
		}
	}

	// A malformed cart entry invalidates the whole payload.
	for _, it := range ord.Items {
		if it.Quantity < 1 {
			return model.Order{}, model.NewFieldError("items", "quantity must be positive")
		}
		if it.Price.IsNegative() {
			return model.Order{}, model.NewFieldError("items", "price must not be negative")
		}
	}

	return ord, nil
}

func ValidPhone(phone string) bool {
	return phoneRE.MatchString(strings.ReplaceAll(phone, " ", ""))
}

func ValidEmail(email string) bool {
	return emailRE.MatchString(email)
}

func trimSet(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}

	return out
}
