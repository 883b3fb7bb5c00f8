package dashboard

import (
	"context"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/dashboard/dto"
)

type UseCase interface {
	Stats(ctx context.Context) (*dto.Stats, error)
}
