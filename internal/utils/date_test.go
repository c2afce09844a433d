package util_test

import (
	"testing"
	"time"

	util "github.com/saulo-duarte/enade-questoes/internal/utils"
)

func TestAccessDate(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"Janeiro", time.Date(2025, time.January, 5, 12, 0, 0, 0, util.SaoPaulo()), "5 jan. 2025"},
		{"Outubro", time.Date(2026, time.October, 17, 9, 30, 0, 0, util.SaoPaulo()), "17 out. 2026"},
		{"Dezembro", time.Date(2024, time.December, 31, 23, 0, 0, 0, util.SaoPaulo()), "31 dez. 2024"},
		// 02:00 UTC is still the previous day in São Paulo.
		{"UTCVirada", time.Date(2025, time.March, 1, 2, 0, 0, 0, time.UTC), "28 fev. 2025"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := util.AccessDate(tc.in); got != tc.want {
				t.Errorf("AccessDate() = %q, esperado %q", got, tc.want)
			}
		})
	}
}
