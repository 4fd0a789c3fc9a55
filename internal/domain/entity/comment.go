package entity

import "time"

// Comment comentario append-only de una solicitud de trabajo o de un reporte.
// ParentID apunta a la entidad dueña; al borrarla se borran sus comentarios.
type Comment struct {
	ID        string
	ParentID  string
	Content   string
	UserID    string
	CreatedAt time.Time
}
