package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
// Eliminar una bodega elimina en cascada todas sus existencias.
type Warehouse struct {
	ID        uint64
	Name      string
	CreatedAt time.Time
}
