package converter

import (
	"bytes"
	"embed"
	"strings"
	"text/template"

	"github.com/google/uuid"

	"github.com/sezikua/TruckTyres-GE/internal/model"
)

var (
	//go:embed templates/order.tmpl
	orderFS       embed.FS
	orderTemplate = template.Must(template.ParseFS(orderFS, "templates/order.tmpl"))

	//go:embed templates/contact.tmpl
	contactFS       embed.FS
	contactTemplate = template.Must(template.ParseFS(contactFS, "templates/contact.tmpl"))

	//go:embed templates/newsletter.tmpl
	newsletterFS       embed.FS
	newsletterTemplate = template.Must(template.ParseFS(newsletterFS, "templates/newsletter.tmpl"))
)

type orderItemView struct {
	Name     string
	Model    string
	Size     string
	Quantity int
	Price    string
}

type orderView struct {
	KindLabel        string
	Reference        string
	FullName         string
	Phone            string
	Email            string
	Region           string
	City             string
	Delivery         string
	CarrierWarehouse string
	Message          string
	Items            []orderItemView
	Total            string
}

// BuildOrderMessage renders the notification text for a validated
// order. Rendering is deterministic and absent optional fields omit
// their line entirely; the text is the sole audit record of the order.
func BuildOrderMessage(ord model.Order, ref uuid.UUID) (string, error) {
	v := orderView{
		KindLabel:        kindLabel(ord.Kind),
		Reference:        ref.String(),
		FullName:         strings.TrimSpace(ord.FirstName + " " + ord.LastName),
		Phone:            ord.Phone,
		Email:            ord.Email,
		Region:           ord.Region,
		City:             ord.City,
		Delivery:         strings.Join(ord.Delivery, ", "),
		CarrierWarehouse: ord.CarrierWarehouse,
		Message:          ord.Message,
	}

	for _, it := range ord.Items {
		v.Items = append(v.Items, orderItemView{
			Name:     it.Name,
			Model:    it.Model,
			Size:     it.Size,
			Quantity: it.Quantity,
			Price:    it.Price.String(),
		})
	}

	if ord.Total != nil {
		v.Total = ord.Total.String()
	}

	var buf bytes.Buffer
	if err := orderTemplate.Execute(&buf, v); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func BuildContactMessage(req model.ContactRequest) (string, error) {
	var buf bytes.Buffer
	if err := contactTemplate.Execute(&buf, req); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func BuildNewsletterMessage(email string) (string, error) {
	var buf bytes.Buffer
	if err := newsletterTemplate.Execute(&buf, struct{ Email string }{Email: email}); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func kindLabel(kind model.OrderKind) string {
	switch kind {
	case model.OrderQuick:
		return "Швидке"
	case model.OrderFull:
		return "Повне"
	default:
		return string(kind)
	}
}
