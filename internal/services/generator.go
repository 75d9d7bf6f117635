package services

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/fsdevblog/shortlinks/internal/models"
)

// ShortCodeAlphabet алфавит коротких кодов: A-Z, a-z, 0-9.
const ShortCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// CodeGenerator генерирует непредсказуемые короткие коды фиксированной длины.
// Каждый символ выбирается равномерно из ShortCodeAlphabet криптостойким генератором.
type CodeGenerator struct {
	length int
}

func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{length: models.ShortCodeLength}
}

func (g *CodeGenerator) Generate() (string, error) {
	alphabetLen := big.NewInt(int64(len(ShortCodeAlphabet)))
	code := make([]byte, g.length)
	for i := range code {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("generate short code: %w", err)
		}
		code[i] = ShortCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}

// IsValidShortCode проверяет длину и алфавит кода без обращения к хранилищу.
func IsValidShortCode(code string) bool {
	if len(code) != models.ShortCodeLength {
		return false
	}
	for i := range len(code) {
		c := code[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
