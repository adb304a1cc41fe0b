package scaffold

import (
	"regexp"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Theme", "my_theme"},
		{"My Theme!!", "my_theme_"},
		{"MyThemeName", "mythemename"},
		{"MiXeD CaSe", "mixed_case"},
		{"already_machine_name", "already_machine_name"},
		{"123 Numbers 456", "123_numbers_456"},
		{"  spaces  everywhere  ", "_spaces_everywhere_"},
		{"dots.and-dashes", "dots_and_dashes"},
		{"a!b@c#d", "a_b_c_d"},
		{"!!!", "_"},
		{"", ""},
		{"Café Crème", "caf_cr_me"},
		{"café", "caf_"}, // combining accent composes, then falls outside the set
		{"你好 world", "_world"},
		{"under_score kept__double", "under_score_kept__double"},
	}

	for _, tc := range tests {
		got := Normalize(tc.input)
		if got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalize_OnlyAllowedCharacters(t *testing.T) {
	allowed := regexp.MustCompile(`^[a-z0-9_]*$`)

	labels := []string{
		"My Theme", "WEIRD!!name", "télé", "tabs\tand\nnewlines",
		"", "plain", "12345", "__",
	}
	for _, label := range labels {
		got := Normalize(label)
		if !allowed.MatchString(got) {
			t.Errorf("Normalize(%q) = %q contains disallowed characters", label, got)
		}
	}
}
