package util

import (
	"fmt"
	"time"
)

var saoPauloLocation *time.Location

func init() {
	var err error
	saoPauloLocation, err = time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		saoPauloLocation = time.FixedZone("BRT", -3*60*60)
	}
}

var monthAbbreviations = [12]string{
	"jan.", "fev.", "mar.", "abr.", "mai.", "jun.",
	"jul.", "ago.", "set.", "out.", "nov.", "dez.",
}

func SaoPaulo() *time.Location {
	return saoPauloLocation
}

// AccessDate formats t the way ABNT references print "Acesso em": 7 out. 2026.
func AccessDate(t time.Time) string {
	local := t.In(saoPauloLocation)
	return fmt.Sprintf("%d %s %d", local.Day(), monthAbbreviations[local.Month()-1], local.Year())
}
