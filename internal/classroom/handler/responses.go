package handler

import (
	"marlin/internal/classroom/models"
	"marlin/internal/classroom/validation"
)

type ClassCreatedResponse struct {
	Registry string `json:"registry"`
}

type ClassSummaryResponse struct {
	Number   int    `json:"number"`
	Year     string `json:"year"`
	Level    string `json:"level"`
	Registry string `json:"registry"`
}

type ClassMemberResponse struct {
	FullName string `json:"fullName"`
	Registry string `json:"registry"`
}

type ClassDetailResponse struct {
	ClassSummaryResponse
	Students []ClassMemberResponse `json:"students"`
}

type StudentCreatedResponse struct {
	StudentRegistry string `json:"studentRegistry"`
}

type StudentResponse struct {
	FullName string `json:"fullName"`
	TaxID    string `json:"cpf"`
	Email    string `json:"email"`
	Registry string `json:"registry"`
}

func toClassSummary(c *models.Class) ClassSummaryResponse {
	return ClassSummaryResponse{
		Number:   c.Number,
		Year:     c.Year,
		Level:    c.Level.String(),
		Registry: c.Registry,
	}
}

func toClassSummaries(classes []*models.Class) []ClassSummaryResponse {
	out := make([]ClassSummaryResponse, 0, len(classes))
	for _, c := range classes {
		out = append(out, toClassSummary(c))
	}
	return out
}

func toClassDetail(c *models.Class) ClassDetailResponse {
	members := make([]ClassMemberResponse, 0, len(c.Students))
	for _, ref := range c.Students {
		members = append(members, ClassMemberResponse{FullName: ref.FullName, Registry: ref.Registry})
	}
	return ClassDetailResponse{ClassSummaryResponse: toClassSummary(c), Students: members}
}

func toStudent(s *models.Student) StudentResponse {
	return StudentResponse{
		FullName: s.FullName,
		TaxID:    validation.FormatTaxID(s.TaxID),
		Email:    s.Email,
		Registry: s.Registry,
	}
}

func toStudents(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, toStudent(s))
	}
	return out
}
