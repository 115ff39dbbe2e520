package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePromoQR generates a QR code for an affiliate promo share link
	GeneratePromoQR(promoCode string) ([]byte, error)

	// ParsePromoQR parses QR code data and returns the embedded promo code
	ParsePromoQR(qrData string) (string, error)
}
