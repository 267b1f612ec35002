package domain

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// ReceiptEmailData holds data for the extension receipt email sent to the
// studio after a successful extension.
type ReceiptEmailData struct {
	ClientName    string
	Title         string
	DurationLabel string
	Amount        string
	OriginalRange string
	NewRange      string
}
