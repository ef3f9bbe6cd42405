package entity

// History registra un cambio de stock: quién lo hizo, sobre qué producto y la
// cantidad resultante. Timestamp lo aporta el caller como texto.
type History struct {
	ID        int64
	Username  string
	Name      string
	Stock     int
	Timestamp string
}
