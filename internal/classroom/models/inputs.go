package models

// ClassInput carries the mutable scalar fields of a class.
type ClassInput struct {
	Number int
	Year   string
	Level  int
}

// StudentInput carries the mutable scalar fields of a student.
type StudentInput struct {
	FullName string
	TaxID    string
	Email    string
}

// EnrollmentInput creates a student and enrolls it into ClassRegistries.
type EnrollmentInput struct {
	Student         StudentInput
	ClassRegistries []string
}
