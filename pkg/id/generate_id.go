package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns a 32-char lowercase hex id. Every public identifier in the
// API (herramientas, solicitudes, checks, usuarios, notificaciones) uses this
// format; numeric primary keys never leave the store.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
