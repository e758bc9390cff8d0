package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateItemQR generates a QR code pointing at an item's public page,
	// suitable for printed posters.
	GenerateItemQR(itemID uuid.UUID) ([]byte, error)

	// ParseItemQR parses QR code data and returns the item ID
	ParseItemQR(qrData string) (uuid.UUID, error)
}
