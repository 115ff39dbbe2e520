package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://isoko.io/?promo="

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, testBaseURL)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePromoQR(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	qrBytes, err := service.GeneratePromoQR("ISOKOA1B2C3")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GeneratePromoQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", testBaseURL)

			qrBytes, err := service.GeneratePromoQR("ISOKOXYZ789")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GeneratePromoQR_InvalidCode(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	tests := []struct {
		name      string
		promoCode string
	}{
		{"Missing prefix", "PROMO123456"},
		{"Too short", "ISOKOA1"},
		{"Too long", "ISOKOA1B2C3D4"},
		{"Lowercase suffix", "ISOKOa1b2c3"},
		{"Empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.GeneratePromoQR(tt.promoCode)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "invalid promo code")
		})
	}
}

func TestQRCodeService_ParsePromoQR(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	// Create valid QR data
	data := QRCodeData{
		PromoCode: "ISOKOA1B2C3",
		ShareURL:  testBaseURL + "ISOKOA1B2C3",
		Type:      "promo",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	// Parse the QR data
	parsedCode, err := service.ParsePromoQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "ISOKOA1B2C3", parsedCode)
}

func TestQRCodeService_ParsePromoQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	_, err := service.ParsePromoQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParsePromoQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	// Create QR data with invalid type
	data := QRCodeData{
		PromoCode: "ISOKOA1B2C3",
		Type:      "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParsePromoQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParsePromoQR_InvalidCode(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	// Create QR data with a malformed promo code
	data := QRCodeData{
		PromoCode: "not-a-promo-code",
		Type:      "promo",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParsePromoQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid promo code")
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)
	originalCode := "ISOKO9Z8Y7X"

	// Generate QR code
	qrBytes, err := service.GeneratePromoQR(originalCode)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Note: We can't directly parse the PNG bytes back to JSON
	// In real usage, the QR code would be scanned by a device
	// and the JSON string would be extracted
	// For testing, we verify the data structure manually
	data := QRCodeData{
		PromoCode: originalCode,
		ShareURL:  testBaseURL + originalCode,
		Type:      "promo",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedCode, err := service.ParsePromoQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, originalCode, parsedCode)
}
