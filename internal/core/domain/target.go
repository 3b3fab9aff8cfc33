// internal/core/domain/target.go
package domain

import (
	"fmt"

	"webchain/internal/platform/validator"
)

// Target es una unidad de entrada: un dominio a recorrer por la cadena completa.
type Target struct {
	// Input es el texto tal como lo dio el operador
	Input string

	// Name es el host normalizado que reciben las herramientas
	Name string

	// Apex es el eTLD+1 de Name (o Name si no se puede derivar)
	Apex string

	// Dir es el nombre del subdirectorio de artefactos bajo el directorio de salida
	Dir string
}

// NewTarget normaliza y valida la entrada del operador.
func NewTarget(input string) (Target, error) {
	if validator.IsEmpty(input) {
		return Target{}, ErrEmptyTarget
	}

	name := validator.NormalizeDomain(input)
	if !validator.IsDomain(name) {
		return Target{}, fmt.Errorf("%w: %q", ErrInvalidDomain, input)
	}
	if validator.IsPublicSuffix(name) {
		return Target{}, fmt.Errorf("%w: %q", ErrPublicSuffix, name)
	}

	return Target{
		Input: input,
		Name:  name,
		Apex:  validator.ApexDomain(name),
		Dir:   validator.SafeDirName(name),
	}, nil
}

// IsApex reporta si el objetivo es el propio dominio registrable.
func (t Target) IsApex() bool {
	return t.Name == t.Apex
}

// String retorna una representación legible del target.
func (t Target) String() string {
	return t.Name
}
