package model

import (
	"strings"
	"time"
)

// LocalizedText is the canonical shape of every translated field.
type LocalizedText struct {
	Uz string `db:"uz" json:"uz"`
	Ru string `db:"ru" json:"ru"`
	En string `db:"en" json:"en"`
}

// IsEmpty reports whether no locale carries text.
func (l LocalizedText) IsEmpty() bool {
	return strings.TrimSpace(l.Uz) == "" && strings.TrimSpace(l.Ru) == "" && strings.TrimSpace(l.En) == ""
}

// Merge returns l with every non-empty locale of other applied on top.
func (l LocalizedText) Merge(other LocalizedText) LocalizedText {
	if other.Uz != "" {
		l.Uz = other.Uz
	}
	if other.Ru != "" {
		l.Ru = other.Ru
	}
	if other.En != "" {
		l.En = other.En
	}
	return l
}

// Values returns the non-empty locales.
func (l LocalizedText) Values() []string {
	out := make([]string, 0, 3)
	for _, v := range []string{l.Uz, l.Ru, l.En} {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// Ref is a populated reference to a named, localized document.
type Ref struct {
	ID   string        `db:"id" json:"_id"`
	Name LocalizedText `db:"name" json:"name"`
}

type Timestamps struct {
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreatedResponse[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}
