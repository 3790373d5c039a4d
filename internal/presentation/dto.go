package presentation

import (
	"github.com/junioryono/beans"
)

// DefinitionDTO represents a component definition for presentation
type DefinitionDTO struct {
	Name    string `json:"name" yaml:"name"`
	Type    string `json:"type" yaml:"type"`
	Primary bool   `json:"primary" yaml:"primary"`
}

// InstanceDTO represents a resolved component
type InstanceDTO struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Value any    `json:"value" yaml:"value"`
}

// FromDefinition converts a definition to a DTO.
func FromDefinition(def beans.Definition) DefinitionDTO {
	dto := DefinitionDTO{
		Name:    def.Name,
		Primary: def.Primary,
	}
	if def.Type != nil {
		dto.Type = def.Type.String()
	}
	return dto
}

// FromDefinitions converts definitions to DTOs, preserving order.
func FromDefinitions(defs []beans.Definition) []DefinitionDTO {
	dtos := make([]DefinitionDTO, len(defs))
	for i, def := range defs {
		dtos[i] = FromDefinition(def)
	}
	return dtos
}

// FromInstance builds the DTO for an instance resolved from def.
func FromInstance(def beans.Definition, instance any) InstanceDTO {
	dto := FromDefinition(def)
	return InstanceDTO{
		Name:  dto.Name,
		Type:  dto.Type,
		Value: instance,
	}
}
