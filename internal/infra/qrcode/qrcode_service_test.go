package qrcode

import (
	"encoding/json"
	"testing"

	"companion/config"
	"companion/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, data []byte) {
	t.Helper()
	require.GreaterOrEqual(t, len(data), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.QRCodeConfig
	}{
		{"nil config", nil},
		{"Low error correction", &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "L"}},
		{"High error correction", &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "Q"}},
		{"Highest error correction", &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "H"}},
		{"Unknown level falls back to medium", &config.QRCodeConfig{Size: 0, ErrorCorrectionLevel: "invalid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.cfg)
			require.NotNil(t, svc)

			png, err := svc.GenerateCheckInQR(service.CheckInPayload{BookingID: uuid.New(), Code: "123456"})
			require.NoError(t, err)
			assertPNG(t, png)
		})
	}
}

func TestQRCodeService_GenerateCheckInQR_RejectsIncompletePayload(t *testing.T) {
	svc := NewQRCodeService(nil)

	_, err := svc.GenerateCheckInQR(service.CheckInPayload{Code: "123456"})
	require.Error(t, err)

	_, err = svc.GenerateCheckInQR(service.CheckInPayload{BookingID: uuid.New()})
	require.Error(t, err)
}

func TestQRCodeService_ParseCheckInQR(t *testing.T) {
	svc := NewQRCodeService(nil)
	bookingID := uuid.New()

	raw, err := json.Marshal(checkInData{BookingID: bookingID.String(), Code: "004217", Type: checkInType})
	require.NoError(t, err)

	payload, err := svc.ParseCheckInQR(string(raw))
	require.NoError(t, err)
	assert.Equal(t, bookingID, payload.BookingID)
	assert.Equal(t, "004217", payload.Code)
}

func TestQRCodeService_ParseCheckInQR_Errors(t *testing.T) {
	svc := NewQRCodeService(nil)

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"invalid json", "invalid json", "failed to unmarshal QR code data"},
		{"wrong type", `{"booking_id":"` + uuid.NewString() + `","code":"1","type":"subscription"}`, "invalid QR code type"},
		{"bad uuid", `{"booking_id":"nope","code":"1","type":"booking_check_in"}`, "failed to parse booking ID"},
		{"missing code", `{"booking_id":"` + uuid.NewString() + `","type":"booking_check_in"}`, "missing check-in code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseCheckInQR(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
