package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sezikua/TruckTyres-GE/internal/model"
	"github.com/sezikua/TruckTyres-GE/internal/transport/http/api"
)

type OrderService interface {
	Submit(ctx context.Context, ord model.Order) (*model.OrderReceipt, error)
	Contact(ctx context.Context, req model.ContactRequest) error
	Subscribe(ctx context.Context, email string) error
}

type handler struct {
	svc OrderService
}

func NewOrderHandler(service OrderService) *handler {
	return &handler{svc: service}
}

type orderItemRequest struct {
	ProductName string `json:"product_name"`
	Model       string `json:"model"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
	// Price snapshot captured at add-to-cart time.
	RegularPrice decimal.Decimal `json:"regular_price"`
}

type orderRequest struct {
	Type             string             `json:"type"`
	FirstName        string             `json:"firstName"`
	LastName         string             `json:"lastName"`
	Phone            string             `json:"phone"`
	Email            string             `json:"email"`
	Region           string             `json:"region"`
	City             string             `json:"city"`
	Delivery         []string           `json:"delivery"`
	CarrierWarehouse string             `json:"carrierWarehouse"`
	Message          string             `json:"message"`
	Items            []orderItemRequest `json:"items"`
	Total            *decimal.Decimal   `json:"total"`
}

type orderResponse struct {
	OK        bool   `json:"ok"`
	Reference string `json:"reference"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

func (h *handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, r, model.NewFieldError("body", "malformed json"))
		return
	}

	receipt, err := h.svc.Submit(r.Context(), orderRequestToModel(req))
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, orderResponse{
		OK:        true,
		Reference: receipt.Reference.String(),
	})
}

type contactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *handler) Contact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, r, model.NewFieldError("body", "malformed json"))
		return
	}

	if err := h.svc.Contact(r.Context(), model.ContactRequest(req)); err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, okResponse{OK: true})
}

type newsletterRequest struct {
	Email string `json:"email"`
}

func (h *handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req newsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, r, model.NewFieldError("body", "malformed json"))
		return
	}

	if err := h.svc.Subscribe(r.Context(), req.Email); err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteJSON(w, r, http.StatusOK, okResponse{OK: true})
}

func orderRequestToModel(req orderRequest) model.Order {
	ord := model.Order{
		Kind:             model.OrderKind(req.Type),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Phone:            req.Phone,
		Email:            req.Email,
		Region:           req.Region,
		City:             req.City,
		Delivery:         req.Delivery,
		CarrierWarehouse: req.CarrierWarehouse,
		Message:          req.Message,
		Total:            req.Total,
	}

	for _, it := range req.Items {
		ord.Items = append(ord.Items, model.OrderItem{
			Name:     it.ProductName,
			Model:    it.Model,
			Size:     it.Size,
			Quantity: it.Quantity,
			Price:    it.RegularPrice,
		})
	}

	return ord
}
