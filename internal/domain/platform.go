package domain

import (
	"fmt"
	"strings"
)

type Platform string

const (
	PlatformFacebook Platform = "facebook"
	PlatformGoogle   Platform = "google"
)

// Platforms lista as plataformas na ordem em que são processadas
var Platforms = []Platform{PlatformFacebook, PlatformGoogle}

func (p Platform) String() string {
	return string(p)
}

// DisplayName retorna o nome usado em mensagens para o operador
func (p Platform) DisplayName() string {
	switch p {
	case PlatformFacebook:
		return "Facebook"
	case PlatformGoogle:
		return "Google Ads"
	default:
		return string(p)
	}
}

// ParsePlatform converte o valor recebido da requisição para uma plataforma conhecida
func ParsePlatform(raw string) (Platform, error) {
	switch Platform(strings.ToLower(strings.TrimSpace(raw))) {
	case PlatformFacebook:
		return PlatformFacebook, nil
	case PlatformGoogle:
		return PlatformGoogle, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPlatform, raw)
	}
}
