package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID int64) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the order resource as a 256px PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID int64) ([]byte, error) {
	link := fmt.Sprintf("%s/api/ctrl/orders/%d", strings.TrimRight(g.BaseURL, "/"), orderID)
	return qrcode.Encode(link, qrcode.Medium, 256)
}
