package services

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(menuItemID uint64) ([]byte, error)
}

// MenuQRGenerator encodes the public menu URL of an item as a 256px PNG,
// for printing on table cards.
type MenuQRGenerator struct {
	BaseURL string
}

func (g MenuQRGenerator) Generate(menuItemID uint64) ([]byte, error) {
	qrData := fmt.Sprintf("%s/menu/%d", g.BaseURL, menuItemID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
