package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"consultcare/internal/storage"
)

// archiver writes a record to object storage before it is hard-deleted.
// A nil store disables archiving.
type archiver struct {
	store  storage.ArchiveStorage
	logger *zap.Logger
}

func newArchiver(store storage.ArchiveStorage, logger *zap.Logger) *archiver {
	return &archiver{store: store, logger: logger}
}

func (a *archiver) save(ctx context.Context, key string, record interface{}) error {
	if a == nil || a.store == nil {
		return nil
	}

	if err := a.store.PutJSON(ctx, key, record); err != nil {
		a.logger.Error("ошибка архивации записи", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("ошибка архивации записи: %w", err)
	}

	a.logger.Info("запись архивирована", zap.String("key", key))
	return nil
}
