package qrcode

import (
	"testing"

	"inventory/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestQRCodeService_GenerateReceiptQR(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		level string
	}{
		{"Small low", 128, "L"},
		{"Medium medium", 256, "M"},
		{"Large high", 512, "Q"},
		{"Highest", 256, "H"},
		{"Invalid level falls back", 256, "invalid"},
		{"Zero size falls back", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.level)

			qrBytes, err := service.GenerateReceiptQR(uuid.New(), "PAY-123")
			require.NoError(t, err)
			require.Greater(t, len(qrBytes), len(pngMagic))
			assert.Equal(t, pngMagic, qrBytes[:4])
		})
	}
}

func TestReceiptPayload(t *testing.T) {
	orderID := uuid.New()

	payload, err := receiptPayload(orderID, "PAY-1")
	require.NoError(t, err)

	assert.JSONEq(t, `{"order_id":"`+orderID.String()+`","payment_reference":"PAY-1","type":"receipt"}`, string(payload))
}

func TestNewQRCodeServiceFromConfig(t *testing.T) {
	svc := NewQRCodeServiceFromConfig(&config.Config{}).(*qrcodeService)
	assert.Equal(t, defaultSize, svc.size)

	svc = NewQRCodeServiceFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 300, ErrorCorrectionLevel: "H"}}).(*qrcodeService)
	assert.Equal(t, 300, svc.size)
}
