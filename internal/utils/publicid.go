package utils

import (
	"crypto/rand"
	"fmt"
)

// Алфавит без похожих символов (0/O, 1/I/L), чтобы идентификатор легко читался.
const publicIdAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const publicIdLength = 8

// GeneratePublicID генерирует короткий анонимный идентификатор для цикла показа.
// Идентификатор никак не связан с тендером и его владельцем.
func GeneratePublicID() (string, error) {
	buf := make([]byte, publicIdLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate public id: %w", err)
	}
	for i, b := range buf {
		buf[i] = publicIdAlphabet[int(b)%len(publicIdAlphabet)]
	}
	return string(buf), nil
}
