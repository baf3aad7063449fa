package request

import (
	"strings"

	"estudio_admin/internal/domain/entities"
	"estudio_admin/internal/domain/money"
	"estudio_admin/internal/usecase"
)

type ServiceItemRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name" binding:"required"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

type StoreItemRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0,lte=1000000000000"`
	Quantity int     `json:"quantity"`
}

// ContractRequest is the create/update payload of a contract.
//
// Service prices are free text as typed on the booking form ("R$ 1.200");
// store prices, travel fee and total are decimal reais, bounded by
// money.MaxUnits.
type ContractRequest struct {
	ClientName      string               `json:"client_name" binding:"required"`
	ClientEmail     string               `json:"client_email" binding:"omitempty,email"`
	ClientPhone     string               `json:"client_phone"`
	EventType       string               `json:"event_type"`
	EventDate       string               `json:"event_date" binding:"required"`
	EventTime       string               `json:"event_time"`
	EventLocation   string               `json:"event_location"`
	PackageTitle    string               `json:"package_title"`
	PackageDuration string               `json:"package_duration"`
	PaymentMethod   string               `json:"payment_method"`
	Message         string               `json:"message"`
	Services        []ServiceItemRequest `json:"services" binding:"dive"`
	StoreItems      []StoreItemRequest   `json:"store_items" binding:"dive"`
	TravelFee       float64              `json:"travel_fee" binding:"gte=0,lte=1000000000000"`
	TotalAmount     float64              `json:"total_amount" binding:"gte=0,lte=1000000000000"`
	Status          string               `json:"status"`
}

func (r ContractRequest) ToInput() usecase.ContractInput {
	services := make([]entities.ServiceItem, 0, len(r.Services))
	for _, s := range r.Services {
		services = append(services, entities.ServiceItem{
			ID:       strings.TrimSpace(s.ID),
			Name:     strings.TrimSpace(s.Name),
			Price:    s.Price,
			Quantity: s.Quantity,
		})
	}
	store := make([]entities.StoreItem, 0, len(r.StoreItems))
	for _, s := range r.StoreItems {
		store = append(store, entities.StoreItem{
			ID:       strings.TrimSpace(s.ID),
			Name:     strings.TrimSpace(s.Name),
			Price:    money.FromFloat(s.Price),
			Quantity: s.Quantity,
		})
	}
	return usecase.ContractInput{
		ClientName:      r.ClientName,
		ClientEmail:     r.ClientEmail,
		ClientPhone:     r.ClientPhone,
		EventType:       r.EventType,
		EventDate:       r.EventDate,
		EventTime:       r.EventTime,
		EventLocation:   r.EventLocation,
		PackageTitle:    r.PackageTitle,
		PackageDuration: r.PackageDuration,
		PaymentMethod:   r.PaymentMethod,
		Message:         r.Message,
		Services:        services,
		StoreItems:      store,
		TravelFee:       money.FromFloat(r.TravelFee),
		TotalAmount:     money.FromFloat(r.TotalAmount),
		Status:          entities.ContractStatus(strings.TrimSpace(r.Status)),
	}
}

// ContractStatusRequest sets or, with an empty status, clears the override.
type ContractStatusRequest struct {
	Status string `json:"status"`
}

// ContractFlagRequest sets a flag explicitly. Without a body the flag is
// toggled.
type ContractFlagRequest struct {
	Value *bool `json:"value"`
}
