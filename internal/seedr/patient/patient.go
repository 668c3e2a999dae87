package patient

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// HMO identifies a patient's health maintenance organization cover. Fields
// left empty are omitted from the stored encoding.
type HMO struct {
	Name           string `json:"name,omitempty" yaml:"name,omitempty"`
	Plan           string `json:"plan,omitempty" yaml:"plan,omitempty"`
	EnrolleeNumber string `json:"enrolleeNumber,omitempty" yaml:"enrolleeNumber,omitempty"`
}

// Candidate is an in-memory patient entry awaiting an insert-or-skip
// decision. Pointer fields are optional; date-like fields stay strings until
// the record is built for storage.
type Candidate struct {
	Name            string  `yaml:"name"`
	Sex             string  `yaml:"sex"`
	DateOfBirth     *string `yaml:"dateOfBirth,omitempty"`
	PhoneNumber     *string `yaml:"phoneNumber,omitempty"`
	Email           *string `yaml:"email,omitempty"`
	Address         string  `yaml:"address"`
	HMO             *HMO    `yaml:"hmo,omitempty"`
	NextAppointment *string `yaml:"nextAppointment,omitempty"`
	Outstanding     *string `yaml:"outstanding,omitempty"`
	IsFamilyHead    bool    `yaml:"isFamilyHead"`
	FamilyID        *string `yaml:"familyId,omitempty"`
	CreatedAt       *string `yaml:"createdAt,omitempty"`
}

// Record is the stored representation of a patient, one row in the patients
// table. Nil pointers map to SQL NULL.
type Record struct {
	Name            string     `db:"name"`
	Sex             string     `db:"sex"`
	DateOfBirth     *time.Time `db:"date_of_birth"`
	PhoneNumber     *string    `db:"phone_number"`
	Email           *string    `db:"email"`
	Address         string     `db:"address"`
	HMO             *string    `db:"hmo"`
	NextAppointment *time.Time `db:"next_appointment"`
	Outstanding     string     `db:"outstanding"`
	IsFamilyHead    bool       `db:"is_family_head"`
	FamilyID        *string    `db:"family_id"`
	CreatedAt       time.Time  `db:"created_at"`
}

// EncodeHMO serializes the structured HMO value to its stored text form.
// An absent value encodes to nil (stored as NULL).
func EncodeHMO(h *HMO) (*string, error) {
	if h == nil {
		return nil, nil
	}
	b, err := json.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("encode hmo: %w", err)
	}
	s := string(b)
	return &s, nil
}

// ParseDate converts an optional source date string to a UTC time using
// dateparse. Nil or empty maps to absent; a malformed value is an error.
func ParseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := dateparse.ParseAny(*s)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", *s, err)
	}
	u := t.UTC()
	return &u, nil
}

// ToRecord maps the candidate onto its stored representation. now stamps
// created_at when the candidate does not carry its own timestamp.
func (c Candidate) ToRecord(now time.Time) (Record, error) {
	dob, err := ParseDate(c.DateOfBirth)
	if err != nil {
		return Record{}, fmt.Errorf("date of birth: %w", err)
	}
	next, err := ParseDate(c.NextAppointment)
	if err != nil {
		return Record{}, fmt.Errorf("next appointment: %w", err)
	}
	hmo, err := EncodeHMO(c.HMO)
	if err != nil {
		return Record{}, err
	}

	outstanding := "0.00"
	if c.Outstanding != nil && *c.Outstanding != "" {
		outstanding = *c.Outstanding
	}

	createdAt := now.UTC()
	if t, err := ParseDate(c.CreatedAt); err != nil {
		return Record{}, fmt.Errorf("created at: %w", err)
	} else if t != nil {
		createdAt = *t
	}

	return Record{
		Name:            c.Name,
		Sex:             c.Sex,
		DateOfBirth:     dob,
		PhoneNumber:     c.PhoneNumber,
		Email:           c.Email,
		Address:         c.Address,
		HMO:             hmo,
		NextAppointment: next,
		Outstanding:     outstanding,
		IsFamilyHead:    c.IsFamilyHead,
		FamilyID:        c.FamilyID,
		CreatedAt:       createdAt,
	}, nil
}
