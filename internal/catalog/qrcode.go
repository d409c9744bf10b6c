package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogerrors "go-rms/internal/catalog/errors"

	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

// TableQR renders a PNG QR code pointing a seated guest at the menu for
// their table.
func (s *service) TableQR(ctx context.Context, tableNumber int) ([]byte, error) {
	table, err := s.repo.FindTableByNumber(ctx, tableNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalogerrors.ErrTableNotFound
		}
		return nil, err
	}

	qrData := fmt.Sprintf("%s/menu?table=%s", s.menuURL, table.ID.String())
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
