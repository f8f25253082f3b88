package quiz

import "github.com/phrazzld/kdc-shelver/internal/domain"

// DefaultTemplates returns the built-in quiz sets. Each call returns fresh
// slices, so callers may modify the result.
func DefaultTemplates() [][]domain.CallNumber {
	return [][]domain.CallNumber{
		// Complex vowels and final consonants
		{
			{Class: "813.5", Author: "갤300"},
			{Class: "813.5", Author: "게300"},
			{Class: "813.5", Author: "길300"},
		},
		// Double vowels and decimals
		{
			{Class: "500.1", Author: "왜20", Vol: "v.1"},
			{Class: "500.1", Author: "월20", Vol: "c.1"},
			{Class: "500.01", Author: "와20", Vol: "v.1"},
		},
		// Final consonants and cutter numbers
		{
			{Class: "630.01", Author: "앋100", Vol: "ㄱ"},
			{Class: "630.01", Author: "안099", Vol: "ㄱ"},
			{Class: "630.001", Author: "암100", Vol: "ㄴ"},
		},
		// Vowels without final consonants, cutter numbers
		{
			{Class: "100", Author: "겨100"},
			{Class: "100", Author: "게050"},
			{Class: "100", Author: "갸050"},
		},
		// Mixed stages
		{
			{Class: "911.3", Author: "간10", Vol: "v.1"},
			{Class: "911.29", Author: "달10", Vol: "c.1"},
			{Class: "911.3", Author: "갈10", Vol: "v.2"},
		},
		// Designators and decimals
		{
			{Class: "700.5", Author: "장20", Vol: "ㄱ"},
			{Class: "700.49", Author: "장20"},
			{Class: "700.5", Author: "장20"},
		},
	}
}
