// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmedina/faunatlas/pkg/slug"
)

/*
TestFrom exercises the full normalization pipeline on scientific names.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple_binomial", "Panthera uncia", "panthera-uncia"},
		{"accented_characters", "Águila imperial ibérica", "aguila-imperial-iberica"},
		{"already_slugged", "panthera-leo", "panthera-leo"},
		{"punctuation", "Gorilla beringei (graueri)", "gorilla-beringei-graueri"},
		{"multiple_spaces", "Lynx   pardinus", "lynx-pardinus"},
		{"leading_trailing_junk", "  ¡Ajolote!  ", "ajolote"},
		{"digits_preserved", "Especie 2024", "especie-2024"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}
