package dto

// CreateLogRequest entrada para registrar un evento en la bitácora.
type CreateLogRequest struct {
	Event     string `json:"event" validate:"required"`
	Username  string `json:"username" validate:"required"`
	Desc      string `json:"desc" validate:"required"`
	Timestamp string `json:"timestamp" validate:"required"`
}

// LogResponse salida de una entrada de la bitácora.
type LogResponse struct {
	ID        int64  `json:"id"`
	Event     string `json:"event"`
	Username  string `json:"username"`
	Desc      string `json:"desc"`
	Timestamp string `json:"timestamp"`
}
