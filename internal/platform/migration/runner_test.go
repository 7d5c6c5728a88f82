package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@db:5432/backlist", "pgx5://u:p@db:5432/backlist"},
		{"postgresql://u:p@db/backlist?sslmode=disable", "pgx5://u:p@db/backlist?sslmode=disable"},
		{"pgx5://db/backlist", "pgx5://db/backlist"},
		{"host=db dbname=backlist", "host=db dbname=backlist"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, convertToPgx5DSN(tt.in))
	}
}
