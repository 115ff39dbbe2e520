package qrcode

import (
	"encoding/json"
	"fmt"
	"regexp"

	"isoko/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

// promoCodePattern matches the referral codes issued to affiliates.
var promoCodePattern = regexp.MustCompile(`^ISOKO[0-9A-Z]{6}$`)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	PromoCode string `json:"promo_code"`
	ShareURL  string `json:"share_url"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GeneratePromoQR generates a QR code for an affiliate promo share link
func (s *qrcodeService) GeneratePromoQR(promoCode string) ([]byte, error) {
	if !promoCodePattern.MatchString(promoCode) {
		return nil, fmt.Errorf("invalid promo code: %s", promoCode)
	}

	// Create QR code data
	data := QRCodeData{
		PromoCode: promoCode,
		ShareURL:  s.baseURL + promoCode,
		Type:      "promo",
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePromoQR parses QR code data and returns the embedded promo code
func (s *qrcodeService) ParsePromoQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "promo" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	// Validate promo code format
	if !promoCodePattern.MatchString(data.PromoCode) {
		return "", fmt.Errorf("invalid promo code: %s", data.PromoCode)
	}

	return data.PromoCode, nil
}
