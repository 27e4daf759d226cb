package qrcode

import (
	"encoding/json"
	"fmt"

	"inventory/config"
	"inventory/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	receiptType = "receipt"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// receiptData is the JSON payload encoded into a receipt QR code.
type receiptData struct {
	OrderID          string `json:"order_id"`
	PaymentReference string `json:"payment_reference"`
	Type             string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func receiptPayload(orderID uuid.UUID, paymentReference string) ([]byte, error) {
	jsonData, err := json.Marshal(receiptData{
		OrderID:          orderID.String(),
		PaymentReference: paymentReference,
		Type:             receiptType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	return jsonData, nil
}

// GenerateReceiptQR generates a PNG QR code for a paid order
func (s *qrcodeService) GenerateReceiptQR(orderID uuid.UUID, paymentReference string) ([]byte, error) {
	jsonData, err := receiptPayload(orderID, paymentReference)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
