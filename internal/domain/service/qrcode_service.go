package service

import (
	"github.com/google/uuid"
)

// CheckInPayload is what the player's QR code carries to the companion's scanner.
type CheckInPayload struct {
	BookingID uuid.UUID
	Code      string
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCheckInQR renders the check-in payload of a booking as a PNG
	GenerateCheckInQR(payload CheckInPayload) ([]byte, error)

	// ParseCheckInQR decodes the text scanned from a check-in QR code
	ParseCheckInQR(qrData string) (CheckInPayload, error)
}
