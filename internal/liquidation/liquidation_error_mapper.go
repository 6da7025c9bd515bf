package liquidation

import (
	"errors"

	liquidationerrors "school-admin/internal/liquidation/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return liquidationerrors.ErrLiquidationNotFound
	}

	return err
}
