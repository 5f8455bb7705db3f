package registry

import (
	"math/rand/v2"
	"time"
)

// DefaultAlphabet - символы генерируемых кодов.
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Generator выдаёт коды-кандидаты.
type Generator interface {
	Generate() string
}

// RandomGenerator равномерно выбирает символы алфавита через math/rand.
// Коды - идентификаторы, а не секреты.
type RandomGenerator struct {
	alphabet string
	length   int
}

// NewRandomGenerator создаёт генератор кодов заданной длины.
func NewRandomGenerator(alphabet string, length int) *RandomGenerator {
	return &RandomGenerator{alphabet: alphabet, length: length}
}

// Generate возвращает новый случайный код.
func (g *RandomGenerator) Generate() string {
	b := make([]byte, g.length)
	for i := range b {
		b[i] = g.alphabet[rand.IntN(len(g.alphabet))]
	}
	return string(b)
}

// Clock - источник текущего времени.
type Clock interface {
	Now() time.Time
}

// RealClock - системное время.
type RealClock struct{}

// Now возвращает текущее системное время.
func (RealClock) Now() time.Time {
	return time.Now()
}
