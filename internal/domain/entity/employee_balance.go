package entity

import "time"

// EmployeeBalance unidades de uma variação em posse de um colaborador.
// Criado sob demanda na primeira entrega concluída; Quantity >= 0 sempre.
type EmployeeBalance struct {
	EmployeeID    string
	ItemVariantID string
	Quantity      int
	UpdatedAt     time.Time
}
