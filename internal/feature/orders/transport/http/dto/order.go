// Package dto converts order entities to and from API types.
package dto

import (
	"shop_backend/internal/api"
	"shop_backend/internal/feature/orders/domain/entity"
	"shop_backend/internal/feature/orders/usecase"
)

func ToOrder(o *entity.Order) api.Order {
	lines := make([]api.OrderLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, api.OrderLine{
			ProductId: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
		})
	}
	return api.Order{
		Id: o.ID,
		Client: api.ClientSnapshot{
			Id:    o.Client.ID,
			Name:  o.Client.Name,
			Tel:   o.Client.Tel,
			Email: o.Client.Email,
		},
		Products:        lines,
		ShippingAddress: toAddress(o.ShippingAddress),
		Payment:         api.Payment{Method: o.Payment.Method, Status: api.PaymentStatus(o.Payment.Status)},
		Status:          api.OrderStatus(o.Status),
		TotalAmount:     o.TotalAmount.Round(2),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func ToOrders(list []entity.Order) []api.Order {
	out := make([]api.Order, 0, len(list))
	for i := range list {
		out = append(out, ToOrder(&list[i]))
	}
	return out
}

// FromPlaceOrderRequest maps the request body to assembler input. No price is read from the request.
// IDs are passed on in canonical lowercase form, which is also the form missing ids are reported in.
func FromPlaceOrderRequest(req api.PlaceOrderRequest) usecase.AssembleInput {
	lines := make([]usecase.LineRequest, 0, len(req.Products))
	for _, l := range req.Products {
		lines = append(lines, usecase.LineRequest{ProductID: l.ProductId.String(), Quantity: l.Quantity})
	}
	return usecase.AssembleInput{
		ClientID:        req.ClientId.String(),
		Lines:           lines,
		ShippingAddress: fromAddress(req.ShippingAddress),
		PaymentMethod:   req.Payment.Method,
	}
}

func FromUpdateOrderRequest(req api.UpdateOrderRequest) usecase.OrderPatch {
	var patch usecase.OrderPatch
	if req.Status != nil {
		s := entity.OrderStatus(*req.Status)
		patch.Status = &s
	}
	if req.PaymentStatus != nil {
		s := entity.PaymentStatus(*req.PaymentStatus)
		patch.PaymentStatus = &s
	}
	patch.PaymentMethod = req.PaymentMethod
	if req.ShippingAddress != nil {
		a := fromAddress(*req.ShippingAddress)
		patch.ShippingAddress = &a
	}
	return patch
}

func toAddress(a entity.Address) api.Address {
	return api.Address{Street: a.Street, City: a.City, PostalCode: a.PostalCode, State: a.State, Country: a.Country}
}

func fromAddress(a api.Address) entity.Address {
	return entity.Address{Street: a.Street, City: a.City, PostalCode: a.PostalCode, State: a.State, Country: a.Country}
}
