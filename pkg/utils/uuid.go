package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um código curto legível, usado como recibo de venda.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
