package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"storefront/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			svc := newQRCodeService(256, tt.level, "http://shop.test")
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(&config.Config{}).(*qrcodeService)
	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, qrcode.Medium, svc.errorCorrectionLevel)
}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := newQRCodeService(size, "M", "http://shop.test/")

		qrBytes, err := svc.GenerateProductQR(42)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(qrBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

func TestQRCodeService_ProductURL(t *testing.T) {
	svc := newQRCodeService(256, "M", "http://shop.test/")
	assert.Equal(t, "http://shop.test/products/42", svc.ProductURL(42))
}

func TestQRCodeService_ParseProductQR(t *testing.T) {
	svc := newQRCodeService(256, "M", "http://shop.test")

	id, err := svc.ParseProductQR(svc.ProductURL(77))
	require.NoError(t, err)
	assert.Equal(t, uint64(77), id)

	invalid := []string{
		"http://shop.test/categories/3",
		"http://shop.test/products/abc",
		"http://shop.test/products/0",
		"products",
		"://bad",
	}
	for _, data := range invalid {
		_, err := svc.ParseProductQR(data)
		assert.Error(t, err, data)
	}
}
