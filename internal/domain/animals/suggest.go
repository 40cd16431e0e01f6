package animals

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// SuggestKind busca la variante más parecida a un discriminante
// desconocido, para mensajes tipo "did you mean dog?".
func SuggestKind(input string) (Kind, bool) {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return "", false
	}

	var best Kind
	bestDist := -1
	for _, k := range Kinds() {
		dist := levenshtein.ComputeDistance(in, string(k))
		if dist > suggestLimit(len(k)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best = k
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
