// Package ticket renders confirmation codes as scannable QR images.
package ticket

import (
	"fmt"
	"strings"

	"github.com/kiddovents/kiddovents/internal/domain"
	qrcode "github.com/skip2/go-qrcode"
)

const defaultSize = 256

type QREncoder struct {
	size int
}

func NewQREncoder(size int) *QREncoder {
	if size <= 0 {
		size = defaultSize
	}
	return &QREncoder{size: size}
}

// Encode returns a PNG of the code.
func (e *QREncoder) Encode(code string) ([]byte, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: empty confirmation code", domain.ErrEncoding)
	}

	png, err := qrcode.Encode(code, qrcode.Medium, e.size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEncoding, err)
	}

	return png, nil
}
