package entity

import "time"

// Location unidade organizacional que mantém estoque próprio.
type Location struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemType tipo de item de fardamento/EPI (ex.: camisa, bota, capacete).
type ItemType struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Classificação de gênero de uma variação.
const (
	GenderMale   = "MASCULINO"
	GenderFemale = "FEMININO"
	GenderUnisex = "UNISSEX"
)

// ItemVariant variação concreta de um tipo de item (tamanho + gênero).
type ItemVariant struct {
	ID         string
	ItemTypeID string
	Size       string // P, M, G, 38, 40...
	Gender     string // MASCULINO | FEMININO | UNISSEX
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Employee colaborador que recebe e devolve itens.
type Employee struct {
	ID           string
	Name         string
	Registration string // matrícula, única
	LocationID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
