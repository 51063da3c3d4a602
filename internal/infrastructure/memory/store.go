// Package memory implementa los puertos de persistencia sobre mapas en
// memoria, con iteración ordenada por clave. Sirve para tests y para corridas
// efímeras (STORE_DRIVER=memory); no sobrevive reinicios.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jframirez/Bodegas-api/internal/application/inventory"
	"github.com/jframirez/Bodegas-api/internal/domain/entity"
	"github.com/jframirez/Bodegas-api/internal/domain/repository"
)

// Store almacén en memoria con los tres puertos del ledger. Todos los métodos
// copian los registros al entrar y al salir para que ningún caller comparta
// memoria con el almacén.
type Store struct {
	mu         sync.RWMutex
	warehouses map[uint64]entity.Warehouse
	items      map[uint64]entity.StockItem
	movements  []entity.StockMovement
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		warehouses: make(map[uint64]entity.Warehouse),
		items:      make(map[uint64]entity.StockItem),
	}
}

// Warehouses devuelve el puerto de bodegas.
func (s *Store) Warehouses() repository.WarehouseRepository { return &warehouseStore{s: s} }

// Items devuelve el puerto de existencias.
func (s *Store) Items() repository.StockItemRepository { return &itemStore{s: s} }

// Movements devuelve el puerto del diario.
func (s *Store) Movements() repository.MovementRepository { return &movementStore{s: s} }

// TxRunner devuelve el runner transaccional del almacén. Las operaciones en
// memoria no fallan a medio camino, así que Run aplica el callback directo
// sobre los mismos puertos; el candado del Ledger serializa el acceso.
func (s *Store) TxRunner() inventory.TxRunner { return &txRunner{s: s} }

// ── Bodegas ──────────────────────────────────────────────────────────────────

var _ repository.WarehouseRepository = (*warehouseStore)(nil)

type warehouseStore struct{ s *Store }

func (r *warehouseStore) Get(_ context.Context, id uint64) (*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r *warehouseStore) Upsert(_ context.Context, warehouse *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.warehouses[warehouse.ID] = *warehouse
	return nil
}

func (r *warehouseStore) Remove(_ context.Context, id uint64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.warehouses, id)
	return nil
}

func (r *warehouseStore) List(_ context.Context) ([]*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := make([]uint64, 0, len(r.s.warehouses))
	for id := range r.s.warehouses {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*entity.Warehouse, 0, len(ids))
	for _, id := range ids {
		w := r.s.warehouses[id]
		out = append(out, &w)
	}
	return out, nil
}

// ── Existencias ──────────────────────────────────────────────────────────────

var _ repository.StockItemRepository = (*itemStore)(nil)

type itemStore struct{ s *Store }

func (r *itemStore) Get(_ context.Context, itemID uint64) (*entity.StockItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	it, ok := r.s.items[itemID]
	if !ok {
		return nil, nil
	}
	return cloneItem(it), nil
}

func (r *itemStore) Upsert(_ context.Context, item *entity.StockItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *item
	if item.UpdatedAt != nil {
		t := *item.UpdatedAt
		stored.UpdatedAt = &t
	}
	r.s.items[item.ItemID] = stored
	return nil
}

func (r *itemStore) Remove(_ context.Context, itemID uint64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.items, itemID)
	return nil
}

func (r *itemStore) List(_ context.Context) ([]*entity.StockItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.collect(func(entity.StockItem) bool { return true }), nil
}

func (r *itemStore) ListByWarehouse(_ context.Context, warehouseID uint64) ([]*entity.StockItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.collect(func(it entity.StockItem) bool { return it.WarehouseID == warehouseID }), nil
}

// collect filtra y devuelve copias en orden ascendente por item_id. Debe
// llamarse con el candado tomado.
func (r *itemStore) collect(keep func(entity.StockItem) bool) []*entity.StockItem {
	ids := make([]uint64, 0, len(r.s.items))
	for id, it := range r.s.items {
		if keep(it) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*entity.StockItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneItem(r.s.items[id]))
	}
	return out
}

func cloneItem(it entity.StockItem) *entity.StockItem {
	c := it
	if it.UpdatedAt != nil {
		t := *it.UpdatedAt
		c.UpdatedAt = &t
	}
	return &c
}

// ── Diario de movimientos ────────────────────────────────────────────────────

var _ repository.MovementRepository = (*movementStore)(nil)

type movementStore struct{ s *Store }

func (r *movementStore) Append(_ context.Context, mov *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.movements = append(r.s.movements, *mov)
	return nil
}

// ListByWarehouse recorre el diario de atrás hacia adelante: el orden de
// inserción es cronológico, así que el resultado queda del más reciente al
// más antiguo.
func (r *movementStore) ListByWarehouse(_ context.Context, warehouseID uint64, limit, offset int) ([]*entity.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if limit <= 0 {
		return []*entity.StockMovement{}, nil
	}

	out := make([]*entity.StockMovement, 0, limit)
	skipped := 0
	for i := len(r.s.movements) - 1; i >= 0 && len(out) < limit; i-- {
		if r.s.movements[i].WarehouseID != warehouseID {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		m := r.s.movements[i]
		out = append(out, &m)
	}
	return out, nil
}

// ── Transacciones ────────────────────────────────────────────────────────────

var _ inventory.TxRunner = (*txRunner)(nil)

type txRunner struct{ s *Store }

func (t *txRunner) Run(_ context.Context, fn func(
	warehouseRepo repository.WarehouseRepository,
	itemRepo repository.StockItemRepository,
	movementRepo repository.MovementRepository,
) error) error {
	return fn(t.s.Warehouses(), t.s.Items(), t.s.Movements())
}
