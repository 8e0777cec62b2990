package qrcode

import (
	"net/url"
	"strconv"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	productPathKey = "products"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService builds the service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qc := cfg.QRCode
	if qc == nil {
		qc = &config.QRCodeConfig{}
	}

	return newQRCodeService(qc.Size, qc.ErrorCorrectionLevel, qc.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
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
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// ProductURL is the storefront page a product QR code points at.
func (s *qrcodeService) ProductURL(productID uint64) string {
	return s.baseURL + "/" + productPathKey + "/" + strconv.FormatUint(productID, 10)
}

// GenerateProductQR renders the product share URL as a PNG.
func (s *qrcodeService) GenerateProductQR(productID uint64) ([]byte, error) {
	qrCode, err := qrcode.New(s.ProductURL(productID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseProductQR accepts any URL whose path ends in /products/{id}.
func (s *qrcodeService) ParseProductQR(qrData string) (uint64, error) {
	u, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse QR code data")
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 || segments[len(segments)-2] != productPathKey {
		return 0, errors.Errorf("invalid QR code path: %s", u.Path)
	}

	productID, err := strconv.ParseUint(segments[len(segments)-1], 10, 64)
	if err != nil || productID == 0 {
		return 0, errors.Errorf("invalid product ID in QR code: %s", segments[len(segments)-1])
	}

	return productID, nil
}
