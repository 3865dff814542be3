package entity

// Lifecycle estado de baja lógica de proveedores, contratos y catálogos.
type Lifecycle string

const (
	LifecycleActive   Lifecycle = "active"
	LifecycleInactive Lifecycle = "inactive"
)

// Valid informa si el estado es conocido.
func (l Lifecycle) Valid() bool {
	return l == LifecycleActive || l == LifecycleInactive
}
