package models

import "errors"

// Sentinel errors shared by services and handlers. Services wrap them with
// fmt.Errorf("%w: ...") to attach detail; handlers match with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation error")
	ErrConflict           = errors.New("conflict")
	ErrSlotNotFound       = errors.New("time slot not found")
	ErrSlotAlreadyTaken   = errors.New("time slot already taken")
	ErrSlotBooked         = errors.New("time slot has a booking")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidTransition  = errors.New("invalid status transition")
)
