package util

import (
	"fmt"
	"math/rand"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

func RandomInt(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}

func RandomString(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

func RandomMoney() float64 {
	return float64(RandomInt(1, 100000)) / 100
}

func RandomAccountNumber() string {
	return fmt.Sprintf("NB%010d", RandomInt(1, 9999999999))
}

func RandomMaskedCardNumber() string {
	return fmt.Sprintf("**** **** **** %04d", RandomInt(0, 9999))
}

func RandomMerchant() string {
	return strings.ToUpper(RandomString(8))
}

func RandomUserID() string {
	return RandomString(6)
}
