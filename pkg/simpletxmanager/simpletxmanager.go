package simpletxmanager

import (
	"context"
	"sync"
)

// TransactionManager сериализует выполнение функций через глобальный мьютекс процесса.
// Используется с in-memory хранилищем, где нет настоящих транзакций:
// check-then-insert сценарии становятся взаимоисключающими, чего достаточно
// для предотвращения двойного бронирования в рамках одного процесса.
type TransactionManager struct {
	mu sync.Mutex
}

// NewTransactionManager создает новый transaction manager
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// Do выполняет fn под глобальным мьютексом
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// DoSerializable выполняет fn под глобальным мьютексом.
// Для in-memory хранилища эквивалентно Do: мьютекс даёт полную сериализацию.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// DoReadOnly выполняет fn без блокировки: читатели полагаются на
// внутреннюю синхронизацию хранилища
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
