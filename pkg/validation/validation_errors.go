package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels shown on the forms
var FieldLabels = map[string]string{
	// Candidate fields
	"Name":        "Nombre",
	"Email":       "Email",
	"Phone":       "Teléfono",
	"Address":     "Dirección",
	"Gender":      "Género",
	"ImageURI":    "Imagen",
	"Experience":  "Experiencia",
	"DocumentURI": "Documentos",

	// Vacancy fields
	"Title":          "Título",
	"Description":    "Descripción",
	"Salary":         "Salario",
	"EmploymentType": "Tipo de empleo",
	"Location":       "Ubicación",
	"Status":         "Estado",
	"Requirements":   "Requisitos",

	// Requirement fields
	"Level":         "Nivel",
	"Years":         "Años de experiencia",
	"Certification": "Certificación",
	"Language":      "Idioma",
}

var indexRegex = regexp.MustCompile(`Requirements\[(\d+)\]\.`)

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	if m := indexRegex.FindStringSubmatch(e.StructNamespace()); m != nil {
		label = fmt.Sprintf("Requisito %s: %s", m[1], label)
	}
	param := e.Param()

	switch e.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s: Es obligatorio", label)

	case "min":
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("%s: Debe tener al menos %s elemento(s)", label, param)
		}
		return fmt.Sprintf("%s: Mínimo %s", label, param)

	case "gte":
		return fmt.Sprintf("%s: Debe ser mayor o igual a %s", label, param)

	case "hr_email":
		return fmt.Sprintf("%s: Formato de email inválido", label)

	case "hr_phone":
		return fmt.Sprintf("%s: Debe contener entre 8 y 15 dígitos", label)

	default:
		return fmt.Sprintf("%s: Validación fallida (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
