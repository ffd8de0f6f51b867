package models

import "github.com/google/uuid"

// Customer represents an account holder, identified externally by its CPF
type Customer struct {
	ID        uuid.UUID            `json:"id"`
	CPF       string               `json:"cpf"` // caller-supplied, unique across customers
	Name      string               `json:"name"`
	Statement []StatementOperation `json:"statement"`
}

// Clone returns a copy of c that shares no memory with it
func (c Customer) Clone() Customer {
	statement := make([]StatementOperation, len(c.Statement))
	copy(statement, c.Statement)
	c.Statement = statement
	return c
}
