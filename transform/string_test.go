package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseTransforms(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
		in   string
		want string
	}{
		{"trim", Trim, "  hello \t", "hello"},
		{"upper", Upper, "abc Def", "ABC DEF"},
		{"lower", Lower, "ABC Def", "abc def"},
		{"capitalize words", CapitalizeWords, "jOHN  smith", "John  Smith"},
		{"capitalize words empty", CapitalizeWords, "", ""},
		{"capitalize words hyphen", CapitalizeWords, "jean-pierre DUPONT", "Jean-pierre Dupont"},
		{"capitalize words apostrophe", CapitalizeWords, "o'NEIL", "O'neil"},
		{"capitalize first", CapitalizeFirst, "hELLO WORLD", "Hello world"},
		{"capitalize first unicode", CapitalizeFirst, "éCOLE", "École"},
		{"capitalize first empty", CapitalizeFirst, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.in))
		})
	}
}

func TestCompose(t *testing.T) {
	fn := Compose(Trim, nil, Upper)
	assert.Equal(t, "ABC", fn("  abc "))
	assert.Equal(t, "x", Compose()("x"))
}
