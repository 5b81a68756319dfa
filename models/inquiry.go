package models

import (
	"strings"
	"time"
)

type Inquiry struct {
	ID              string        `bson:"id" json:"id"`
	FullName        string        `bson:"full_name" json:"full_name"`
	Email           string        `bson:"email" json:"email"`
	Phone           string        `bson:"phone,omitempty" json:"phone,omitempty"`
	Company         string        `bson:"company,omitempty" json:"company,omitempty"`
	BusinessType    string        `bson:"business_type,omitempty" json:"business_type,omitempty"`
	ServiceInterest string        `bson:"service_interest,omitempty" json:"service_interest,omitempty"`
	Message         string        `bson:"message" json:"message"`
	Status          InquiryStatus `bson:"status" json:"status"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updated_at"`
}

type InquiryRequest struct {
	FullName        string `json:"full_name" validate:"required,max=200"`
	Name            string `json:"name"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"max=40"`
	Company         string `json:"company"`
	BusinessType    string `json:"business_type"`
	ServiceInterest string `json:"service_interest"`
	Message         string `json:"message" validate:"required,max=5000"`
}

// Normalize trims fields and folds the legacy name field into FullName.
func (r *InquiryRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	if r.FullName == "" {
		r.FullName = strings.TrimSpace(r.Name)
	}
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Message = strings.TrimSpace(r.Message)
}
