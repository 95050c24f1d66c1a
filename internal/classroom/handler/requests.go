package handler

import (
	"marlin/internal/classroom/models"
)

type ClassRequest struct {
	Number int    `json:"number"`
	Year   string `json:"year"`
	Level  int    `json:"level"`
}

func (r *ClassRequest) Input() models.ClassInput {
	return models.ClassInput{Number: r.Number, Year: r.Year, Level: r.Level}
}

type StudentRequest struct {
	FullName string `json:"fullName"`
	TaxID    string `json:"cpf"`
	Email    string `json:"email"`
}

func (r *StudentRequest) Input() models.StudentInput {
	return models.StudentInput{FullName: r.FullName, TaxID: r.TaxID, Email: r.Email}
}

type ClassReference struct {
	ClassRegistry string `json:"classRegistry"`
}

// CreateStudentRequest creates a student and enrolls it in Classes.
type CreateStudentRequest struct {
	StudentRequest
	Classes []ClassReference `json:"classes"`
}

func (r *CreateStudentRequest) Input() models.EnrollmentInput {
	refs := make([]string, 0, len(r.Classes))
	for _, c := range r.Classes {
		refs = append(refs, c.ClassRegistry)
	}
	return models.EnrollmentInput{Student: r.StudentRequest.Input(), ClassRegistries: refs}
}
