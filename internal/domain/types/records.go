package types

// Patient is a medical record entry.
type Patient struct {
	Name           string   `yaml:"name" validate:"required"`
	Age            int      `yaml:"age" validate:"gte=0"`
	MedicalHistory string   `yaml:"medical_history"`
	Medications    []string `yaml:"medications"`
}

// Medic is a staff entry.
type Medic struct {
	Name       string `yaml:"name" validate:"required"`
	Speciality string `yaml:"speciality"`
}
