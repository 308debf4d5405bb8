package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// VacancyStatus is the canonical status literal written by this service.
type VacancyStatus string

const (
	StatusAvailable   VacancyStatus = "Disponible"
	StatusUnavailable VacancyStatus = "No Disponible"
)

func (s VacancyStatus) Valid() bool {
	return s == StatusAvailable || s == StatusUnavailable
}

// Toggle flips Disponible to No Disponible; any other value becomes Disponible.
func (s VacancyStatus) Toggle() VacancyStatus {
	if s == StatusAvailable {
		return StatusUnavailable
	}
	return StatusAvailable
}

// Years accepts numbers, numeric strings and "" when decoding. Older
// documents stored the field as free text.
type Years int

func (y *Years) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*y = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*y = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("years of experience %q is not a number", s)
		}
		*y = Years(n)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*y = Years(int(f))
	return nil
}

// Requirement is owned by a Vacancy and replaced only as a whole sequence.
type Requirement struct {
	Name          string `json:"Nombre" validate:"notblank"`
	Description   string `json:"Descripcion" validate:"notblank"`
	Level         string `json:"Nivel" validate:"notblank"`
	Years         Years  `json:"AñosExperiencia" validate:"gte=0"`
	Certification string `json:"Certificacion,omitempty"`
	Mandatory     bool   `json:"Obligatorio"`
	Language      string `json:"idioma,omitempty"`
}

type Vacancy struct {
	ID             string        `json:"id"`
	Title          string        `json:"titulo" validate:"notblank"`
	Description    string        `json:"descripcion" validate:"notblank"`
	Salary         string        `json:"salario" validate:"notblank"`
	EmploymentType string        `json:"tipoempleo" validate:"notblank"`
	Location       string        `json:"ubicacion" validate:"notblank"`
	Status         VacancyStatus `json:"estado"`
	Requirements   []Requirement `json:"Requisitos" validate:"required,min=1,dive"`
}

type VacancyPatch struct {
	Title          *string        `json:"titulo,omitempty" validate:"omitempty,notblank"`
	Description    *string        `json:"descripcion,omitempty" validate:"omitempty,notblank"`
	Salary         *string        `json:"salario,omitempty" validate:"omitempty,notblank"`
	EmploymentType *string        `json:"tipoempleo,omitempty" validate:"omitempty,notblank"`
	Location       *string        `json:"ubicacion,omitempty" validate:"omitempty,notblank"`
	Status         *VacancyStatus `json:"estado,omitempty"`
	Requirements   *[]Requirement `json:"Requisitos,omitempty" validate:"omitempty,min=1,dive"`
}

func (p *VacancyPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Salary == nil && p.EmploymentType == nil &&
		p.Location == nil && p.Status == nil && p.Requirements == nil
}

type VacancyRepository interface {
	List(ctx context.Context) ([]Vacancy, error)
	GetByID(ctx context.Context, id string) (*Vacancy, error)
	Create(ctx context.Context, vacancy *Vacancy) error
	Update(ctx context.Context, id string, patch *VacancyPatch) error
	Delete(ctx context.Context, id string) error
	// Watch delivers the full vacancy snapshot now and after every change
	// until the returned subscription is cancelled.
	Watch(ctx context.Context, onSnapshot func([]Vacancy)) (Subscription, error)
}

type VacancyUsecase interface {
	ListVacancies(ctx context.Context) ([]Vacancy, error)
	GetVacancy(ctx context.Context, id string) (*Vacancy, error)
	RegisterVacancy(ctx context.Context, vacancy *Vacancy) error
	UpdateVacancy(ctx context.Context, id string, patch *VacancyPatch) (*Vacancy, error)
	ToggleStatus(ctx context.Context, id string) (*Vacancy, error)
	DeleteVacancy(ctx context.Context, id string) error
	ListVacancyCandidates(ctx context.Context, id string) ([]Candidate, error)
}
