package service

// QRCodeService generates QR code images for station map links, so printed
// material can point at the live locator position.
type QRCodeService interface {
	// GenerateMapQR encodes the given map URL as a PNG image.
	GenerateMapQR(mapURL string) ([]byte, error)
}
