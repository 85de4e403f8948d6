package models

import (
	"github.com/myhien-tailor/engagement/internal/utils"
)

type OrderStatus string

const (
	StatusNew        OrderStatus = "NEW"
	StatusInProgress OrderStatus = "IN_PROGRESS"
	StatusDone       OrderStatus = "DONE"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// Valid reports whether the status is one of the known order states.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusDone, StatusCancelled:
		return true
	}
	return false
}

type OrderItem struct {
	Name     string `json:"name,omitempty"`
	Image    string `json:"image,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

// Order is the stored shape of one customer transaction. Tailoring orders
// complete at delivery; fabric orders are payment-complete at creation and
// are flagged with IsFabricOrder.
type Order struct {
	ID            string             `json:"id"`
	CustomerID    string             `json:"customerId,omitempty"`
	Phone         string             `json:"phone,omitempty"`
	Name          string             `json:"name,omitempty"`
	Email         string             `json:"email,omitempty"`
	Status        OrderStatus        `json:"status"`
	Total         string             `json:"total,omitempty"`
	Budget        string             `json:"budget,omitempty"`
	IsFabricOrder bool               `json:"isFabricOrder,omitempty"`
	StyleName     string             `json:"styleName,omitempty"`
	Style         string             `json:"style,omitempty"`
	ProductName   string             `json:"productName,omitempty"`
	ProductType   string             `json:"productType,omitempty"`
	ReferralCode  string             `json:"referralCode,omitempty"`
	Measurements  map[string]string  `json:"measurements,omitempty"`
	SampleImages  []string           `json:"sampleImages,omitempty"`
	Items         []OrderItem        `json:"items,omitempty"`
	CreatedAt     utils.RFC3339Date  `json:"createdAt"`
	Receive       *utils.RFC3339Date `json:"receive,omitempty"`
	Due           *utils.RFC3339Date `json:"due,omitempty"`
}

// OrderStatusUpdate is the request body for a status change.
type OrderStatusUpdate struct {
	Status OrderStatus `json:"status"`
}

// CustomerIdentity carries every field an order may identify its owner by.
// Matching is a logical OR over the non-empty fields.
type CustomerIdentity struct {
	CustomerID string `json:"customerId"`
	Phone      string `json:"phone,omitempty"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
}

// ProductCard is the display-ready projection of a purchased order.
type ProductCard struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Date          utils.RFC3339Date `json:"date"`
	Price         string            `json:"price"`
	Measurements  map[string]string `json:"measurements,omitempty"`
	Status        OrderStatus       `json:"status"`
	Category      string            `json:"category"`
	Image         string            `json:"image,omitempty"`
	IsFabricOrder bool              `json:"isFabricOrder"`
}
