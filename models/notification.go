package models

// EmailMessage is one outgoing email. It is also the asynq task payload.
type EmailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	HTML    bool   `json:"html"`
	// Kind tags the message for logs, e.g. "booking.customer".
	Kind string `json:"kind,omitempty"`
}
