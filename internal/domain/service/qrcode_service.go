package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders the receipt QR code of a paid order.
type QRCodeService interface {
	// GenerateReceiptQR returns a PNG encoding the order id and payment reference.
	GenerateReceiptQR(orderID uuid.UUID, paymentReference string) ([]byte, error)
}
