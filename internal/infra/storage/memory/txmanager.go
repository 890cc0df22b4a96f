package memory

import "context"

// TxManager менеджер транзакций для хранилища в памяти
// Транзакции выполняются по одной; при ошибке или панике изменения откатываются
type TxManager struct {
	store *Store
}

// NewTxManager создает менеджер транзакций
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// Do выполняет fn в транзакции
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

// DoSerializable выполняет fn в транзакции
// Транзакции и так сериализованы, конфликтов и повторов не бывает
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	// Вложенный вызов переиспользует текущую транзакцию
	if _, ok := journalFrom(ctx); ok {
		return fn(ctx)
	}

	m.store.txMu.Lock()
	defer m.store.txMu.Unlock()

	j := &journal{}
	defer func() {
		if p := recover(); p != nil {
			m.store.rollback(j)
			panic(p)
		}
		if err != nil {
			m.store.rollback(j)
		}
	}()

	return fn(context.WithValue(ctx, journalKey{}, j))
}
