// internal/utils/prng.go
package utils

import (
	"image/color"
	"math/rand"
	"time"
)

// PRNGService — обёртка над генератором случайных чисел Go,
// чтобы цвета кругов можно было воспроизвести по сиду.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создаёт сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// RandomColor returns an opaque color with each channel drawn from [0, max).
func (s *PRNGService) RandomColor(maxR, maxG, maxB int) color.RGBA {
	return color.RGBA{
		R: uint8(s.Intn(maxR)),
		G: uint8(s.Intn(maxG)),
		B: uint8(s.Intn(maxB)),
		A: 255,
	}
}
