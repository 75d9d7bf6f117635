package services

import (
	"context"
	"fmt"
)

// Pinger хранилище, доступность которого проверяет /ping.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingService проверяет соединение с хранилищем ссылок.
type PingService struct {
	conn    Pinger
	storage ServiceType
}

func NewPingService(conn Pinger, storage ServiceType) *PingService {
	return &PingService{conn: conn, storage: storage}
}

// CheckConnection возвращает ErrUnknown, если хранилище не ответило.
func (s *PingService) CheckConnection(ctx context.Context) error {
	if err := s.conn.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %s storage ping: %w", ErrUnknown, s.storage, err)
	}
	return nil
}
