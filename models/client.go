package models

import "time"

// Client belongs to exactly one partner.
type Client struct {
	ID        string          `bson:"id" json:"id"`
	PartnerID string          `bson:"partner_id" json:"partner_id"`
	FullName  string          `bson:"full_name" json:"full_name"`
	Email     string          `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string          `bson:"phone,omitempty" json:"phone,omitempty"`
	Company   string          `bson:"company,omitempty" json:"company,omitempty"`
	Services  []ClientService `bson:"services" json:"services"`
	CreatedAt time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time       `bson:"updated_at" json:"updated_at"`
}

// ClientService is one purchased service line in a client's ledger.
type ClientService struct {
	ID           string                 `bson:"id" json:"id"`
	ClientID     string                 `bson:"client_id" json:"client_id"`
	ServiceID    string                 `bson:"service_id" json:"service_id"`
	ServiceName  string                 `bson:"service_name,omitempty" json:"service_name,omitempty"`
	Price        float64                `bson:"price" json:"price"`
	PurchaseDate time.Time              `bson:"purchase_date" json:"purchase_date"`
	Metadata     map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

type ClientRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
}

type ClientServiceRequest struct {
	ServiceID   string                 `json:"service_id"`
	ServiceName string                 `json:"service_name"`
	Price       float64                `json:"price"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type ClientServiceUpdate struct {
	Price    *float64               `json:"price"`
	Metadata map[string]interface{} `json:"metadata"`
}

type ClientRevenue struct {
	ClientID   string  `json:"client_id"`
	ClientName string  `json:"client_name"`
	Amount     float64 `json:"amount"`
}

type RevenueSummary struct {
	Total    float64         `json:"total"`
	ByClient []ClientRevenue `json:"by_client"`
}
