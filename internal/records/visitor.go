package records

import (
	"fmt"
	"io"
	"strings"

	"patterns/internal/domain"
)

// Visitor has one operation per record kind.
type Visitor interface {
	VisitPatient(p domain.Patient)
	VisitMedic(m domain.Medic)
}

// Element is a record that can be handed to a Visitor.
type Element interface {
	Accept(v Visitor)
}

// PatientRecord is the Element form of a patient.
type PatientRecord struct{ domain.Patient }

func (r PatientRecord) Accept(v Visitor) { v.VisitPatient(r.Patient) }

// MedicRecord is the Element form of a medic.
type MedicRecord struct{ domain.Medic }

func (r MedicRecord) Accept(v Visitor) { v.VisitMedic(r.Medic) }

// NameVisitor prints only names.
type NameVisitor struct{ Out io.Writer }

func (v NameVisitor) VisitPatient(p domain.Patient) {
	fmt.Fprintf(v.Out, "Patient name: %s\n", p.Name)
}

func (v NameVisitor) VisitMedic(m domain.Medic) {
	fmt.Fprintf(v.Out, "Medic name: %s\n", m.Name)
}

// DataVisitor prints every field.
type DataVisitor struct{ Out io.Writer }

func (v DataVisitor) VisitPatient(p domain.Patient) {
	fmt.Fprintf(v.Out, "Name: %s, Age: %d, Medical History: %s, Current Medications: %s\n",
		p.Name, p.Age, p.MedicalHistory, strings.Join(p.Medications, ","))
}

func (v DataVisitor) VisitMedic(m domain.Medic) {
	fmt.Fprintf(v.Out, "Medic Name: %s, Speciality: %s\n", m.Name, m.Speciality)
}

// NewVisitor returns the visitor called name ("name" or "data") writing to out.
func NewVisitor(name string, out io.Writer) (Visitor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "name":
		return NameVisitor{Out: out}, nil
	case "data", "":
		return DataVisitor{Out: out}, nil
	}
	return nil, &domain.InputError{Field: "visitor", Value: name, Err: errUnknownVisitor}
}
