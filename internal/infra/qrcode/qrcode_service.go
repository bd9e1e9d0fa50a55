package qrcode

import (
	"encoding/json"

	"companion/config"
	"companion/internal/domain/service"
	"companion/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	checkInType = "booking_check_in"

	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// checkInData is the JSON text encoded in a check-in QR code.
type checkInData struct {
	BookingID string `json:"booking_id"`
	Code      string `json:"code"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance. A nil config uses
// a 256px image with medium error correction.
func NewQRCodeService(cfg *config.QRCodeConfig) service.QRCodeService {
	size, level := defaultSize, "M"
	if cfg != nil {
		if cfg.Size > 0 {
			size = cfg.Size
		}
		level = cfg.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateCheckInQR renders the booking id and check-in code as a PNG.
func (s *qrcodeService) GenerateCheckInQR(payload service.CheckInPayload) ([]byte, error) {
	if payload.BookingID == uuid.Nil || payload.Code == "" {
		return nil, errors.New("check-in payload requires a booking id and a code")
	}

	jsonData, err := json.Marshal(checkInData{
		BookingID: payload.BookingID.String(),
		Code:      payload.Code,
		Type:      checkInType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseCheckInQR decodes the scanned text back into a payload.
func (s *qrcodeService) ParseCheckInQR(qrData string) (service.CheckInPayload, error) {
	var data checkInData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return service.CheckInPayload{}, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != checkInType {
		return service.CheckInPayload{}, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	bookingID, err := uuid.Parse(data.BookingID)
	if err != nil {
		return service.CheckInPayload{}, errors.Wrap(err, "failed to parse booking ID")
	}
	if data.Code == "" {
		return service.CheckInPayload{}, errors.New("missing check-in code")
	}

	return service.CheckInPayload{BookingID: bookingID, Code: data.Code}, nil
}
