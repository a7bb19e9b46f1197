package model

import "time"

type (
	// A Model defines an object that can be stored in database.
	Model interface {
		// GetID returns the model's ID.
		GetID() string
		// SetID defines the model's ID.
		SetID(string)
		// Touch updates the model's timestamps, the creation one is only set once.
		Touch(time.Time)
	}

	// A Base contains the default model fields.
	Base struct {
		ID        string    `json:"-" msgpack:"id"         storm:"id"`
		CreatedAt time.Time `json:"-" msgpack:"created_at" storm:"index"`
		UpdatedAt time.Time `json:"-" msgpack:"updated_at" storm:"index"`
	}
)

// GetID returns the model's ID.
func (m *Base) GetID() string {
	return m.ID
}

// SetID defines the model's ID.
func (m *Base) SetID(id string) {
	m.ID = id
}

// Touch updates the model's timestamps.
func (m *Base) Touch(t time.Time) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = t
	}
	m.UpdatedAt = t
}
