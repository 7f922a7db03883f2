package http

import (
	"time"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewRecipientRequest is the body of POST /api/v1/recipients
// and PUT /api/v1/recipients/:id.
type NewRecipientRequest struct {
	Name              string `json:"name"`
	Street            string `json:"street"`
	Number            int    `json:"number"`
	AdditionalDetails string `json:"additional_details"`
	City              string `json:"city"`
	State             string `json:"state"`
	PostalCode        string `json:"postal_code"`
}

// RecipientResponse is one recipient of GET /api/v1/recipients.
type RecipientResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Street            string `json:"street"`
	Number            int    `json:"number"`
	AdditionalDetails string `json:"additional_details,omitempty"`
	City              string `json:"city"`
	State             string `json:"state"`
	PostalCode        string `json:"postal_code"`
}

// NewDeliveryManRequest is the body of POST /api/v1/deliverymen.
type NewDeliveryManRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	AvatarID *string `json:"avatar_id,omitempty"`
}

// UpdateDeliveryManRequest is the body of PUT /api/v1/deliverymen/:id.
// Empty fields are left unchanged.
type UpdateDeliveryManRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	AvatarID *string `json:"avatar_id,omitempty"`
}

// DeliveryManResponse is one delivery man of GET /api/v1/deliverymen.
type DeliveryManResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// NewOrderRequest is the body of POST /api/v1/orders.
type NewOrderRequest struct {
	Product       string `json:"product"`
	RecipientID   string `json:"recipient_id"`
	DeliveryManID string `json:"delivery_man_id"`
}

// UpdateOrderRequest is the body of PUT /api/v1/orders/:id.
// Absent fields are left unchanged; at least one must be present.
type UpdateOrderRequest struct {
	Product       string  `json:"product"`
	RecipientID   *string `json:"recipient_id,omitempty"`
	DeliveryManID *string `json:"delivery_man_id,omitempty"`
}

// OrderRecipientResponse carries the recipient block of an order listing row.
type OrderRecipientResponse struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	Number     int    `json:"number"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// OrderDeliveryManResponse carries the delivery man block of an order listing row.
type OrderDeliveryManResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderResponse is one order of GET /api/v1/orders.
type OrderResponse struct {
	ID           string                   `json:"id"`
	Product      string                   `json:"product"`
	Status       string                   `json:"status"`
	StartDate    *time.Time               `json:"start_date,omitempty"`
	EndDate      *time.Time               `json:"end_date,omitempty"`
	CanceledAt   *time.Time               `json:"canceled_at,omitempty"`
	SignatureURL string                   `json:"signature_url,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	Recipient    OrderRecipientResponse   `json:"recipient"`
	DeliveryMan  OrderDeliveryManResponse `json:"delivery_man"`
}

// DeliveryResponse is one order of GET /api/v1/deliverymen/:id/deliveries.
type DeliveryResponse struct {
	ID         string                 `json:"id"`
	Product    string                 `json:"product"`
	Status     string                 `json:"status"`
	StartDate  *time.Time             `json:"start_date,omitempty"`
	EndDate    *time.Time             `json:"end_date,omitempty"`
	CanceledAt *time.Time             `json:"canceled_at,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
	Recipient  OrderRecipientResponse `json:"recipient"`
}

// PickUpOrderRequest is the body of POST /api/v1/orders/:id/pickup.
type PickUpOrderRequest struct {
	DeliveryManID string    `json:"delivery_man_id"`
	StartDate     time.Time `json:"start_date"`
}

// DeliverOrderRequest is the body of POST /api/v1/orders/:id/deliver.
type DeliverOrderRequest struct {
	DeliveryManID string    `json:"delivery_man_id"`
	SignatureID   string    `json:"signature_id"`
	EndDate       time.Time `json:"end_date"`
}

// NewProblemRequest is the body of POST /api/v1/orders/:id/problems.
type NewProblemRequest struct {
	Description string `json:"description"`
}

// ProblemResponse is one problem of the problem listings.
type ProblemResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// FileResponse is the body returned by POST /api/v1/files.
type FileResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
	URL  string `json:"url,omitempty"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}
