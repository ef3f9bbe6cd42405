package dto

// CreateHistoryRequest entrada para registrar un cambio de stock.
// Timestamp lo aporta el caller como texto (formato libre).
type CreateHistoryRequest struct {
	Username  string `json:"username" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Stock     int    `json:"stock" validate:"min=0"`
	Timestamp string `json:"timestamp" validate:"required"`
}

// HistoryResponse salida de un registro del historial.
type HistoryResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	Timestamp string `json:"timestamp"`
}
