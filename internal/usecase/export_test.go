package usecase

import "time"

// Test-only accessors for deterministic order number generation.
func SetOrderNow(u *OrderUseCase, f func() time.Time) { u.now = f }

func SetOrderRandN(u *OrderUseCase, f func(int) int) { u.randN = f }
