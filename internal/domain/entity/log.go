package entity

// Log es una entrada de la bitácora de auditoría.
type Log struct {
	ID        int64
	Event     string
	Username  string
	Desc      string
	Timestamp string
}
