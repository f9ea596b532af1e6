package utils

import "strings"

// FormatBrazilianNumber mantém só dígitos, garante o prefixo 55 e insere o nono
// dígito em celulares com 12 dígitos (55 + DDD + 8).
func FormatBrazilianNumber(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	number := b.String()
	if !strings.HasPrefix(number, "55") {
		number = "55" + number
	}

	if len(number) == 12 {
		return number[:4] + "9" + number[4:]
	}

	return number
}
