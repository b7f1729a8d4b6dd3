package presentation

import "github.com/prateeksan/patterns/internal/demo"

// DemoDTO is the external representation of a catalog entry.
type DemoDTO struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// FromDemos converts catalog entries to DTOs.
func FromDemos(entries []*demo.Entry) []DemoDTO {
	dtos := make([]DemoDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, DemoDTO{
			Name:        e.Name,
			Category:    string(e.Category),
			Description: e.Description,
		})
	}
	return dtos
}
