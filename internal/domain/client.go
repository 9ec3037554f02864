package domain

// Client representa um cliente da loja
type Client struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
	CPF  string `json:"cpf"`
}

type UpdateClientRequest struct {
	ID   int     `json:"id"`
	Nome *string `json:"nome"`
	CPF  *string `json:"cpf"`
}
