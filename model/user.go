package model

import (
	"strings"

	"github.com/muhammadheryan/restock/constant"
)

// Actor is the resolved caller identity every role-gated operation receives.
type Actor struct {
	Role  constant.Role `json:"role"`
	Email string        `json:"email"`
}

func (a Actor) Is(role constant.Role) bool {
	return a.Role == role
}

// NormalizeEmail is the single form emails are stored and compared in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
