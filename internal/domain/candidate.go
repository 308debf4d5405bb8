package domain

import (
	"context"
)

// Experience is owned by a Candidate and has no identity of its own.
type Experience struct {
	Description string `json:"descripcion"`
	Company     string `json:"empresa"`
	StartDate   string `json:"fechainicio"`
	EndDate     string `json:"fechafin"`
	Position    string `json:"puesto"`
	Address     string `json:"direccion"`
}

type Candidate struct {
	ID          string       `json:"id"`
	Name        string       `json:"nombre" validate:"notblank"`
	Email       string       `json:"email" validate:"notblank,hr_email"`
	Phone       string       `json:"telefono" validate:"notblank,hr_phone"`
	Address     string       `json:"direccion" validate:"notblank"`
	Gender      string       `json:"genero" validate:"notblank"`
	ImageURI    string       `json:"imagen,omitempty"`
	Experience  []Experience `json:"experiencia"`
	DocumentURI []string     `json:"documento"`

	// Assignment back-reference. Written only by the assignment workflow.
	AssignedPosition  *string `json:"puestoAsignado,omitempty"`
	AssignedVacancyID *string `json:"idVacante,omitempty"`
}

// Assignment returns the candidate's current assignment, or nil when unassigned.
func (c *Candidate) Assignment() *Assignment {
	if c.AssignedVacancyID == nil || *c.AssignedVacancyID == "" {
		return nil
	}
	a := &Assignment{CandidateID: c.ID, VacancyID: *c.AssignedVacancyID}
	if c.AssignedPosition != nil {
		a.VacancyTitle = *c.AssignedPosition
	}
	return a
}

// CandidatePatch overwrites only the non-nil fields. Last write wins.
type CandidatePatch struct {
	Name        *string       `json:"nombre,omitempty" validate:"omitempty,notblank"`
	Email       *string       `json:"email,omitempty" validate:"omitempty,notblank,hr_email"`
	Phone       *string       `json:"telefono,omitempty" validate:"omitempty,notblank,hr_phone"`
	Address     *string       `json:"direccion,omitempty" validate:"omitempty,notblank"`
	Gender      *string       `json:"genero,omitempty" validate:"omitempty,notblank"`
	ImageURI    *string       `json:"imagen,omitempty"`
	Experience  *[]Experience `json:"experiencia,omitempty"`
	DocumentURI *[]string     `json:"documento,omitempty"`
}

func (p *CandidatePatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Address == nil &&
		p.Gender == nil && p.ImageURI == nil && p.Experience == nil && p.DocumentURI == nil
}

type CandidateRepository interface {
	List(ctx context.Context) ([]Candidate, error)
	GetByID(ctx context.Context, id string) (*Candidate, error)
	// ListByVacancy returns the candidates whose idVacante equals vacancyID.
	ListByVacancy(ctx context.Context, vacancyID string) ([]Candidate, error)
	Create(ctx context.Context, candidate *Candidate) error
	Update(ctx context.Context, id string, patch *CandidatePatch) error
	// SetAssignment writes the back-reference fields; nil clears them.
	SetAssignment(ctx context.Context, id string, assignment *Assignment) error
	Delete(ctx context.Context, id string) error
}

type CandidateUsecase interface {
	ListCandidates(ctx context.Context) ([]Candidate, error)
	GetCandidate(ctx context.Context, id string) (*Candidate, error)
	RegisterCandidate(ctx context.Context, candidate *Candidate) error
	UpdateCandidate(ctx context.Context, id string, patch *CandidatePatch) (*Candidate, error)
	DeleteCandidate(ctx context.Context, id string) error
	UploadProfileImage(ctx context.Context, id string, image []byte) (*Candidate, error)
}
