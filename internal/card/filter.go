package card

import "strings"

// FilterOptions selects agents for a batch. Zero options keep everyone.
type FilterOptions struct {
	// FreeWords must all appear (case-insensitive) in the name, role,
	// email, website or address.
	FreeWords string
	// WithPhoto keeps only agents that have a photo URL.
	WithPhoto bool
}

func Filter(agents []AgentCardData, opt FilterOptions) []AgentCardData {
	words := strings.Fields(strings.ToLower(opt.FreeWords))
	var out []AgentCardData
	for _, a := range agents {
		if opt.WithPhoto && !a.HasPhoto() {
			continue
		}
		if len(words) > 0 {
			hay := strings.ToLower(strings.Join([]string{a.FullName, a.RoleLabel, a.Email, a.Website, a.Address}, " "))
			ok := true
			for _, w := range words {
				if !strings.Contains(hay, w) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}
