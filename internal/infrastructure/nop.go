package infrastructure

import (
	"context"

	"github.com/DRSN-tech/product-table/internal/usecase"
)

// NopPublisher используется, когда Kafka не настроена.
type NopPublisher struct{}

func (NopPublisher) PublishQueryChanged(context.Context, *usecase.QueryChangedEvent) error {
	return nil
}
