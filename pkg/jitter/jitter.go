// Package jitter считает интервалы между повторными попытками с экспоненциальным ростом
// и случайной добавкой, чтобы несколько реплик не ходили в источник синхронно.
package jitter

import (
	"math/rand/v2"
	"time"
)

// DefaultJitter - доля случайной добавки по умолчанию (до +50%).
const DefaultJitter = 0.5

// Source - источник случайных чисел в [0, 1).
type Source func() float64

// Duration возвращает d с добавкой в диапазоне [0, d*factor).
func Duration(d time.Duration, factor float64) time.Duration {
	return DurationFrom(d, factor, rand.Float64)
}

// DurationFrom - то же, что Duration, но с явным источником случайности.
func DurationFrom(d time.Duration, factor float64, src Source) time.Duration {
	if d <= 0 || factor <= 0 {
		return d
	}

	return d + time.Duration(src()*factor*float64(d))
}

// Backoff возвращает base*2^attempt, ограниченное max, без добавки.
// attempt нумеруется с нуля.
func Backoff(base, max time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}

	backoff := base
	for range attempt {
		if backoff >= max/2 {
			return max
		}
		backoff *= 2
	}

	return min(backoff, max)
}

// ExponentialBackoff - Backoff со случайной добавкой factor.
func ExponentialBackoff(base, max time.Duration, attempt int, factor float64) time.Duration {
	return Duration(Backoff(base, max, attempt), factor)
}
