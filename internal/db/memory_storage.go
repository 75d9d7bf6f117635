package db

import (
	"context"
	"sync"

	"github.com/fsdevblog/shortlinks/internal/db/memory"
)

// MemoryStorage in-memory база из двух коллекций: ссылки (ключ - короткий код) и переходы (ключ - id).
//
// Встроенный RWMutex сериализует операции, затрагивающие обе коллекции сразу
// (запись перехода вместе с инкрементом счетчика, каскадное удаление).
type MemoryStorage struct {
	sync.RWMutex

	URLs   *memory.MStorage
	Clicks *memory.MStorage

	urlCodes map[uint]string
	urlSeq   uint
	clickSeq uint
}

func NewMemStorage() *MemoryStorage {
	return &MemoryStorage{
		URLs:     memory.NewMemStorage(),
		Clicks:   memory.NewMemStorage(),
		urlCodes: make(map[uint]string),
	}
}

// NextURLID выдает следующий идентификатор ссылки. Вызывать под Lock.
func (s *MemoryStorage) NextURLID() uint {
	s.urlSeq++
	return s.urlSeq
}

// NextClickID выдает следующий идентификатор перехода. Вызывать под Lock.
func (s *MemoryStorage) NextClickID() uint {
	s.clickSeq++
	return s.clickSeq
}

// IndexURL связывает id ссылки с ее коротким кодом. Вызывать под Lock.
func (s *MemoryStorage) IndexURL(id uint, code string) {
	s.urlCodes[id] = code
}

// UnindexURL удаляет связь id -> код. Вызывать под Lock.
func (s *MemoryStorage) UnindexURL(id uint) {
	delete(s.urlCodes, id)
}

// CodeByID возвращает короткий код по id ссылки. Вызывать под RLock или Lock.
func (s *MemoryStorage) CodeByID(id uint) (string, bool) {
	code, ok := s.urlCodes[id]
	return code, ok
}

// Ping всегда успешен, пока не отменен контекст.
func (s *MemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err() //nolint:wrapcheck
}
