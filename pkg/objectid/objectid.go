// Package objectid genera identificadores de 24 caracteres hex con la forma
// de un ObjectId de MongoDB: el sistema original migró sus datos desde una
// base de documentos y el frontend legado espera ese formato de id.
//
// La unicidad es solo probabilística (no hay contador real ni chequeo de
// colisiones): 8 hex de timestamp Unix + 6 hex aleatorios + 4 hex aleatorios
// + 6 hex aleatorios.
package objectid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"
)

// New devuelve un nuevo id de 24 caracteres hex en minúsculas.
func New() string {
	return NewAt(time.Now())
}

// NewAt genera un id con el timestamp indicado (los 8 primeros hex).
func NewAt(t time.Time) string {
	return fmt.Sprintf("%08x%06x%04x%06x",
		uint32(t.Unix()),
		rand24(),
		rand16(),
		rand24(),
	)
}

func rand24() uint32 {
	var b [4]byte
	_, _ = rand.Read(b[:3])
	return binary.BigEndian.Uint32(b[:]) >> 8
}

func rand16() uint16 {
	var b [2]byte
	_, _ = rand.Read(b[:])
	return binary.BigEndian.Uint16(b[:])
}
