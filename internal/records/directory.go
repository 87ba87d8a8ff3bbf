package records

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"patterns/internal/domain"
)

var (
	errUnknownVisitor = errors.New(`want "name" or "data"`)

	validate = validator.New()
)

// Directory is the full set of records the viewer shows.
type Directory struct {
	Patients []domain.Patient `yaml:"patients" validate:"dive"`
	Medics   []domain.Medic   `yaml:"medics" validate:"dive"`
}

// Seed returns the built-in records.
func Seed() Directory {
	return Directory{
		Patients: []domain.Patient{
			{Name: "John Doe", Age: 30, MedicalHistory: "None", Medications: []string{"Aspirin"}},
			{Name: "Jane Smith", Age: 40, MedicalHistory: "High blood pressure", Medications: []string{"Lisinopril"}},
			{Name: "Bob Johnson", Age: 50, MedicalHistory: "Type 2 diabetes", Medications: []string{"Metformin"}},
		},
		Medics: []domain.Medic{
			{Name: "Dr. John Smith", Speciality: "Cardiology"},
			{Name: "Dr. Jane Johnson", Speciality: "Oncology"},
			{Name: "Dr. Bob Williams", Speciality: "Pediatrics"},
		},
	}
}

// LoadFile reads a directory from a YAML file and validates every entry.
func LoadFile(path string) (Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Directory{}, fmt.Errorf("read records %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var d Directory
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return Directory{}, &domain.InputError{Field: "records", Value: path, Err: err}
	}
	if err := validate.Struct(d); err != nil {
		return Directory{}, &domain.InputError{Field: "records", Value: path, Err: err}
	}
	return d, nil
}

// Elements returns patients in list order followed by medics in reverse order.
func (d Directory) Elements() []Element {
	out := make([]Element, 0, len(d.Patients)+len(d.Medics))
	for p := range All[domain.Patient](Forward(d.Patients)) {
		out = append(out, PatientRecord{p})
	}
	for m := range All[domain.Medic](Reverse(d.Medics)) {
		out = append(out, MedicRecord{m})
	}
	return out
}

// Show hands every element to v.
func (d Directory) Show(v Visitor) {
	for _, e := range d.Elements() {
		e.Accept(v)
	}
}
