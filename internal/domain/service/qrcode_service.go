package service

// QRCodeService generates and parses product share QR codes.
type QRCodeService interface {
	// GenerateProductQR renders a PNG encoding the product's share URL.
	GenerateProductQR(productID uint64) ([]byte, error)

	// ParseProductQR extracts the product ID from QR code content.
	ParseProductQR(qrData string) (uint64, error)
}
