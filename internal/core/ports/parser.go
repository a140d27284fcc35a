package ports

import "github.com/SalimYassine/Minishell/internal/core/domain"

// Parser turns one input line into a pipeline description.
//
//go:generate mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type Parser interface {
	// Parse never fails: syntax errors are carried in the returned Pipeline's Err field.
	Parse(line string) *domain.Pipeline
}
